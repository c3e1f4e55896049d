package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/provernet/go-provernet/hash"
)

func TestCalcHash32(t *testing.T) {
	h := CalcHash32([]byte("data"))
	require.Equal(t, Hash32(hash.Sum([]byte("data"))), h)
	require.NotEqual(t, h, CalcHash32([]byte("other")))
	require.False(t, h.IsEmpty())
	require.True(t, EmptyHash32.IsEmpty())
}

func TestHash32Strings(t *testing.T) {
	h := CalcHash32([]byte("data"))
	require.True(t, strings.HasPrefix(h.Hex(), "0x"))
	require.Len(t, h.Hex(), 2+2*Hash32Length)
	require.Equal(t, h.Hex(), h.String())
	require.Len(t, h.ShortString(), 5)
}

func TestHash32SetBytes(t *testing.T) {
	var h Hash32
	h.SetBytes([]byte{1, 2, 3})
	require.Equal(t, byte(3), h[Hash32Length-1])
	require.Equal(t, byte(1), h[Hash32Length-3])

	// longer input is cropped from the left
	long := make([]byte, Hash32Length+4)
	long[4] = 0xaa
	h.SetBytes(long)
	require.Equal(t, byte(0xaa), h[0])
}
