// Package prng provides the deterministic, 32-byte-seeded stream of
// randomness this module builds keys and paths from. Every keypair and
// every signing decision traces back to one 32-byte master seed read
// through this package, which is what makes signing reproducible: the
// same seed, read in the same order, always yields the same bytes.
package prng

import (
	"io"

	"decred.org/cspp/chacha20prng"

	"github.com/georgwiese/hbsig/internal/primitives"
)

// Reader is a deterministic CSPRNG seeded from a 32-byte key.
type Reader struct {
	r io.Reader
}

// New returns a Reader seeded deterministically from seed.
func New(seed primitives.Hash) *Reader {
	return &Reader{r: chacha20prng.New(seed[:], 0)}
}

// Read implements io.Reader. It never returns an error.
func (r *Reader) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

// FillBytes returns n fresh pseudorandom bytes.
func (r *Reader) FillBytes(n int) []byte {
	b := make([]byte, n)
	r.r.Read(b) // never errors
	return b
}

// Hash draws a fresh pseudorandom 32-byte value.
func (r *Reader) Hash() primitives.Hash {
	var h primitives.Hash
	copy(h[:], r.FillBytes(primitives.Size))
	return h
}

// Intn returns a uniformly distributed pseudorandom integer in [0, n).
// n must be a power of two; the scheme only ever calls this with the
// q-indexed branching factor, which spec.md requires to be one.
func (r *Reader) Intn(n int) int {
	if n <= 0 || n&(n-1) != 0 {
		panic("prng: Intn requires a power-of-two n")
	}
	mask := uint32(n - 1)
	var buf [4]byte
	r.r.Read(buf[:])
	v := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	return int(v & mask)
}
