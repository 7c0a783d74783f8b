package primitives

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeastSignificantBits(t *testing.T) {
	got := LeastSignificantBits(10, 5)
	require.Equal(t, []bool{false, true, false, true, false}, got)
}

func TestBitsToUint(t *testing.T) {
	require.Equal(t, uint64(10), BitsToUint([]bool{false, true, false, true, false}))
}

func TestBytesToBitsRoundTrip(t *testing.T) {
	bits := BytesToBits([]byte{0xa5})
	require.Equal(t, uint64(0xa5), BitsToUint(bits))
}
