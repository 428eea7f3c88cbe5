package project

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uvalc/uvalc/internal/domain/assembly"
)

func sampleAssembly() assembly.Assembly {
	return assembly.Assembly{
		Rsi:         0.11,
		Rse:         0.04,
		BridgeRatio: 0.17,
		Layers: []assembly.Layer{
			{Order: 1, ThicknessMM: 12.5, Normal: assembly.MaterialRef{Category: "board", Material: "plasterboard"}},
			{Order: 2, ThicknessMM: 105, Normal: assembly.MaterialRef{Category: "insulation", Material: "glass wool"}, Bridge: assembly.MaterialRef{Category: "wood", Material: "stud"}},
		},
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	original := sampleAssembly()

	data, err := Serialize(original)
	require.NoError(t, err)

	restored, err := Deserialize(data)
	require.NoError(t, err)
	require.Equal(t, original, restored)
}

func TestDocument_RoundTripPreservesLayerOrder(t *testing.T) {
	// Non-contiguous, unsorted order values survive the round trip as
	// given; sorting happens at compute time only.
	original := assembly.Assembly{
		Rsi: 0.11, Rse: 0.04, BridgeRatio: 0,
		Layers: []assembly.Layer{
			{Order: 7, ThicknessMM: 9, Normal: assembly.MaterialRef{Material: "plywood"}},
			{Order: 2, ThicknessMM: 105, Normal: assembly.MaterialRef{Material: "glass wool"}},
		},
	}

	data, err := Serialize(original)
	require.NoError(t, err)
	restored, err := Deserialize(data)
	require.NoError(t, err)
	require.Equal(t, original.Layers, restored.Layers)
}

func TestDeserialize_InvalidJSON(t *testing.T) {
	_, err := Deserialize([]byte("{not json"))
	require.ErrorIs(t, err, ErrMalformedDocument)
}

func TestDeserialize_MissingRequiredFields(t *testing.T) {
	cases := map[string]string{
		"missing Rsi":    `{"Rse": 0.04, "thermalBridgeRatio": 0.17, "layers": []}`,
		"missing Rse":    `{"Rsi": 0.11, "thermalBridgeRatio": 0.17, "layers": []}`,
		"missing ratio":  `{"Rsi": 0.11, "Rse": 0.04, "layers": []}`,
		"missing layers": `{"Rsi": 0.11, "Rse": 0.04, "thermalBridgeRatio": 0.17}`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Deserialize([]byte(doc))
			require.ErrorIs(t, err, ErrMalformedDocument)
		})
	}
}

func TestDeserialize_NonNumericOrder(t *testing.T) {
	doc := `{"Rsi": 0.11, "Rse": 0.04, "thermalBridgeRatio": 0.17,
		"layers": [{"order": "first", "thickness_mm": 12.5}]}`
	_, err := Deserialize([]byte(doc))
	require.ErrorIs(t, err, ErrMalformedDocument)
}

func TestDeserialize_MissingLayerOrder(t *testing.T) {
	doc := `{"Rsi": 0.11, "Rse": 0.04, "thermalBridgeRatio": 0.17,
		"layers": [{"thickness_mm": 12.5}]}`
	_, err := Deserialize([]byte(doc))
	require.ErrorIs(t, err, ErrMalformedDocument)
}

func TestDeserialize_MissingThicknessReadsZero(t *testing.T) {
	doc := `{"Rsi": 0.11, "Rse": 0.04, "thermalBridgeRatio": 0.17,
		"layers": [{"order": 1, "mat_normal": "plasterboard"}]}`
	a, err := Deserialize([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, 0.0, a.Layers[0].ThicknessMM)
	require.Equal(t, "plasterboard", a.Layers[0].Normal.Material)
}

func TestDeserialize_EmptyLayers(t *testing.T) {
	doc := `{"Rsi": 0.11, "Rse": 0.04, "thermalBridgeRatio": 0.17, "layers": []}`
	a, err := Deserialize([]byte(doc))
	require.NoError(t, err)
	require.Empty(t, a.Layers)
}
