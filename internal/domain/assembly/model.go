package assembly

import "sort"

// Reference surface resistances and bridge area ratio used when the caller
// does not supply values (m²·K/W and dimensionless area fraction).
const (
	DefaultRsi         = 0.11
	DefaultRse         = 0.04
	DefaultBridgeRatio = 0.17
)

// Path selects which material reference of a layer is resolved.
type Path int

const (
	// PathNormal is the standard assembly path.
	PathNormal Path = iota
	// PathBridge is the thermal-bridge assembly path (e.g. structural
	// framing crossing the insulation).
	PathBridge
)

// MaterialRef addresses a material by (category, name). Category may be
// empty; lookups then match on name alone.
type MaterialRef struct {
	Category string `json:"category"`
	Material string `json:"material"`
}

// Layer is one entry of the stack. Order defines stack position and need
// not be contiguous; layers are sorted by Order before use.
type Layer struct {
	Order       int
	ThicknessMM float64
	Normal      MaterialRef
	Bridge      MaterialRef
}

// EffectiveRef returns the material reference used for a path. The bridge
// reference falls back field-wise to the normal one: an unset bridge
// material or category inherits its normal counterpart.
func (l Layer) EffectiveRef(p Path) MaterialRef {
	if p != PathBridge {
		return l.Normal
	}
	ref := l.Bridge
	if ref.Material == "" {
		ref.Material = l.Normal.Material
	}
	if ref.Category == "" {
		ref.Category = l.Normal.Category
	}
	return ref
}

// Assembly is the layer-stack input of a computation: surface resistances,
// thermal-bridge area ratio and the ordered layers. It is a value object;
// the computation reads it and never mutates it.
type Assembly struct {
	Rsi         float64
	Rse         float64
	BridgeRatio float64
	Layers      []Layer
}

// SortedLayers returns the layers in stack order (stable sort by Order).
func (a Assembly) SortedLayers() []Layer {
	layers := make([]Layer, len(a.Layers))
	copy(layers, a.Layers)
	sort.SliceStable(layers, func(i, j int) bool {
		return layers[i].Order < layers[j].Order
	})
	return layers
}

// Result holds the derived figures of one computation. It has no identity
// and is recomputed whenever the inputs change.
type Result struct {
	RSumNormal float64 `json:"r_sum_normal"`
	RSumBridge float64 `json:"r_sum_bridge"`
	UNormal    float64 `json:"u_normal"`
	UBridge    float64 `json:"u_bridge"`
	UTotal     float64 `json:"u_total"`
}

// MaterialLookup resolves a material reference to its conductivity.
type MaterialLookup interface {
	Lookup(category, name string) (float64, error)
}
