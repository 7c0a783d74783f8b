package wots

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDAcceptsValidValues(t *testing.T) {
	for _, dv := range []uint64{1, 3, 15, 255} {
		_, err := NewD(dv)
		require.NoError(t, err, "d=%d should be valid", dv)
	}
}

func TestDRejectsInvalidValues(t *testing.T) {
	for _, dv := range []uint64{0, 2, 7, 31, 256} {
		_, err := NewD(dv)
		require.Error(t, err, "d=%d should be rejected", dv)
	}
}

func TestDDerivedSizes(t *testing.T) {
	cases := []struct {
		d, w, n0, bitsC, l uint64
	}{
		{1, 1, 256, 9, 265},
		{3, 2, 128, 10, 133},
		{15, 4, 64, 12, 67},
		{255, 8, 32, 16, 34},
	}
	for _, c := range cases {
		d := MustNewD(c.d)
		require.Equal(t, c.w, uint64(d.W()), "d=%d W", c.d)
		require.Equal(t, c.n0, uint64(d.N0()), "d=%d N0", c.d)
		require.Equal(t, c.bitsC, uint64(d.BitsC()), "d=%d BitsC", c.d)
		require.Equal(t, c.l, uint64(d.L()), "d=%d L", c.d)
	}
}
