package assembly

import "math"

// LayerResistance returns the thermal resistance of a single layer,
// R = thickness[m] / λ. A non-positive or unknown conductivity contributes
// zero resistance instead of failing the computation, and negative
// thickness is clamped to zero.
func LayerResistance(thicknessMM, lambda float64) float64 {
	if lambda <= 0 || math.IsNaN(lambda) {
		return 0
	}
	if thicknessMM < 0 {
		thicknessMM = 0
	}
	return thicknessMM / 1000.0 / lambda
}

// SumResistance sums layer resistances over the stack for one path,
// resolving each layer's effective material reference through the lookup.
// A material the lookup cannot resolve degrades to zero resistance.
func SumResistance(layers []Layer, mats MaterialLookup, path Path) float64 {
	var sum float64
	for _, layer := range layers {
		ref := layer.EffectiveRef(path)
		lambda, err := mats.Lookup(ref.Category, ref.Material)
		if err != nil {
			continue
		}
		sum += LayerResistance(layer.ThicknessMM, lambda)
	}
	return sum
}
