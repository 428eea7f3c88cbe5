package project

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/uvalc/uvalc/internal/domain/assembly"
)

// documentLayer is the wire form of one layer. Required fields are pointers
// so a missing field is distinguishable from a zero value.
type documentLayer struct {
	Order       *int     `json:"order"`
	ThicknessMM *float64 `json:"thickness_mm"`
	CatNormal   string   `json:"cat_normal"`
	MatNormal   string   `json:"mat_normal"`
	CatBridge   string   `json:"cat_bridge"`
	MatBridge   string   `json:"mat_bridge"`
}

// document is the wire form of a saved project.
type document struct {
	Rsi                *float64        `json:"Rsi"`
	Rse                *float64        `json:"Rse"`
	ThermalBridgeRatio *float64        `json:"thermalBridgeRatio"`
	Layers             []documentLayer `json:"layers"`
}

// Serialize emits the assembly as a project document. Layer order is
// written as given; sorting by order happens at compute time, which keeps
// the round trip lossless.
func Serialize(a assembly.Assembly) ([]byte, error) {
	doc := document{
		Rsi:                &a.Rsi,
		Rse:                &a.Rse,
		ThermalBridgeRatio: &a.BridgeRatio,
		Layers:             make([]documentLayer, 0, len(a.Layers)),
	}
	for i := range a.Layers {
		layer := a.Layers[i]
		order := layer.Order
		thickness := layer.ThicknessMM
		doc.Layers = append(doc.Layers, documentLayer{
			Order:       &order,
			ThicknessMM: &thickness,
			CatNormal:   layer.Normal.Category,
			MatNormal:   layer.Normal.Material,
			CatBridge:   layer.Bridge.Category,
			MatBridge:   layer.Bridge.Material,
		})
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing project document: %w", err)
	}
	return data, nil
}

// Deserialize parses a project document. Unlike material resolution this is
// strict: a document represents the user's saved intent, so a missing
// required field or non-numeric order is reported instead of repaired, and
// no partially-populated assembly is ever returned. A missing thickness is
// the one lenient case and reads as zero.
func Deserialize(data []byte) (assembly.Assembly, error) {
	var doc document
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return assembly.Assembly{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	switch {
	case doc.Rsi == nil:
		return assembly.Assembly{}, fmt.Errorf("%w: missing field %q", ErrMalformedDocument, "Rsi")
	case doc.Rse == nil:
		return assembly.Assembly{}, fmt.Errorf("%w: missing field %q", ErrMalformedDocument, "Rse")
	case doc.ThermalBridgeRatio == nil:
		return assembly.Assembly{}, fmt.Errorf("%w: missing field %q", ErrMalformedDocument, "thermalBridgeRatio")
	case doc.Layers == nil:
		return assembly.Assembly{}, fmt.Errorf("%w: missing field %q", ErrMalformedDocument, "layers")
	}

	layers := make([]assembly.Layer, 0, len(doc.Layers))
	for i, layer := range doc.Layers {
		if layer.Order == nil {
			return assembly.Assembly{}, fmt.Errorf("%w: layer %d missing field %q", ErrMalformedDocument, i, "order")
		}
		var thickness float64
		if layer.ThicknessMM != nil {
			thickness = *layer.ThicknessMM
		}
		layers = append(layers, assembly.Layer{
			Order:       *layer.Order,
			ThicknessMM: thickness,
			Normal:      assembly.MaterialRef{Category: layer.CatNormal, Material: layer.MatNormal},
			Bridge:      assembly.MaterialRef{Category: layer.CatBridge, Material: layer.MatBridge},
		})
	}

	return assembly.Assembly{
		Rsi:         *doc.Rsi,
		Rse:         *doc.Rse,
		BridgeRatio: *doc.ThermalBridgeRatio,
		Layers:      layers,
	}, nil
}
