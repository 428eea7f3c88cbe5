package assembly

// rTotalFloor guards the division against zero or negative total
// resistance. A numeric safety clamp, not a physical model choice.
const rTotalFloor = 1e-9

// UFromResistance converts a total resistance path to a transmittance,
// U = 1 / (Rsi + ΣR + Rse).
func UFromResistance(rsi, rSum, rse float64) float64 {
	total := rsi + rSum + rse
	if total < rTotalFloor {
		total = rTotalFloor
	}
	return 1.0 / total
}

// Compute derives the U-value of an assembly. The normal and thermal-bridge
// paths are computed independently and blended by the bridge area ratio:
//
//	U_total = (1-a)*U_normal + a*U_bridge
//
// The blend is a linear area-weighted parallel-path approximation, not an
// exact heat-flow simulation. Compute is a pure function of its inputs.
func Compute(a Assembly, mats MaterialLookup) Result {
	layers := a.SortedLayers()

	rSumNormal := SumResistance(layers, mats, PathNormal)
	rSumBridge := SumResistance(layers, mats, PathBridge)

	uNormal := UFromResistance(a.Rsi, rSumNormal, a.Rse)
	uBridge := UFromResistance(a.Rsi, rSumBridge, a.Rse)

	ratio := clamp01(a.BridgeRatio)

	return Result{
		RSumNormal: rSumNormal,
		RSumBridge: rSumBridge,
		UNormal:    uNormal,
		UBridge:    uBridge,
		UTotal:     (1.0-ratio)*uNormal + ratio*uBridge,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
