package material

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCache_SameBytesSameTable(t *testing.T) {
	var c Cache
	raw := []byte("name,lambda\npine,0.12\n")

	first := c.Resolve(raw)
	second := c.Resolve(raw)

	require.Equal(t, 1, first.Len())
	require.Equal(t, first.Records(), second.Records())
}

func TestCache_NewBytesInvalidate(t *testing.T) {
	var c Cache

	first := c.Resolve([]byte("name,lambda\npine,0.12\n"))
	require.Equal(t, 1, first.Len())

	second := c.Resolve([]byte("name,lambda\npine,0.12\noak,0.16\n"))
	require.Equal(t, 2, second.Len())

	// Going back to the original bytes re-resolves them.
	third := c.Resolve([]byte("name,lambda\npine,0.12\n"))
	require.Equal(t, 1, third.Len())
}
