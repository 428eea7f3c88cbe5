package material

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

const catalogCSV = "分類,材料名,λ\n断熱材,グラスウール,0.045\n木材,杉,0.12\n"

func TestResolve_UTF8(t *testing.T) {
	table := Resolve([]byte(catalogCSV))

	require.Equal(t, 2, table.Len())
	require.Equal(t, "グラスウール", table.Records()[0].Name)
	require.Equal(t, 0.045, table.Records()[0].Lambda)
}

func TestResolve_UTF8BOM(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte(catalogCSV)...)
	table := Resolve(raw)

	require.Equal(t, 2, table.Len())
	require.Equal(t, "断熱材", table.Records()[0].Category)
}

func TestResolve_ShiftJIS(t *testing.T) {
	raw, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(catalogCSV))
	require.NoError(t, err)

	table := Resolve(raw)
	require.Equal(t, 2, table.Len())
	require.Equal(t, "グラスウール", table.Records()[0].Name)
	require.Equal(t, "杉", table.Records()[1].Name)
}

func TestResolve_EUCJP(t *testing.T) {
	raw, _, err := transform.Bytes(japanese.EUCJP.NewEncoder(), []byte(catalogCSV))
	require.NoError(t, err)

	table := Resolve(raw)
	require.Equal(t, 2, table.Len())
	require.Equal(t, 0.12, table.Records()[1].Lambda)
}

func TestResolve_GarbageYieldsEmptyTable(t *testing.T) {
	table := Resolve([]byte{0xFF, 0xFE, 0x00, 0x81})
	require.Equal(t, 0, table.Len())
}

func TestResolve_EmptyInput(t *testing.T) {
	require.Equal(t, 0, Resolve(nil).Len())
	require.Equal(t, 0, Resolve([]byte("")).Len())
}

func TestResolve_HeaderOnly(t *testing.T) {
	require.Equal(t, 0, Resolve([]byte("category,name,lambda\n")).Len())
}

func TestResolve_RaggedRows(t *testing.T) {
	// Rows with differing field counts are accepted, not rejected.
	table := Resolve([]byte("name,lambda,comment\npine,0.12\noak,0.16,dense,extra\n"))
	require.Equal(t, 2, table.Len())
}
