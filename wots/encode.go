package wots

import (
	"github.com/georgwiese/hbsig/internal/primitives"
)

// DominationFreeEncode maps a 256-bit message to a vector of L small
// unsigned integers in [0, d] such that for any two distinct inputs,
// neither encoding dominates the other component-wise. This is what
// lets W-OTS release only some hash-chain values per signature without
// enabling a forger to combine two signatures into a third.
func DominationFreeEncode(m primitives.Hash, d D) []uint8 {
	w := d.W()
	n0 := d.N0()
	bitsC := d.BitsC()

	bits := primitives.BytesToBits(m[:])
	chunks := primitives.BitsToChunks(bits, int(w))

	result := make([]uint8, 0, d.L())
	c := d.Value() * uint64(n0)
	for _, x := range chunks {
		result = append(result, x)
		c -= uint64(x)
	}

	cBits := primitives.LeastSignificantBits(int(c), int(bitsC))
	result = append(result, primitives.BitsToChunks(cBits, int(w))...)

	return result
}
