package merkle

import (
	"github.com/georgwiese/hbsig/internal/primitives"
)

// Proof is a Merkle membership proof: the leaf's index and its sibling
// hashes, ordered from the leaf level upward to (but not including) the
// root.
type Proof struct {
	Index  uint64
	Hashes []primitives.Hash
}

// Proof returns the membership proof for the leaf at index i.
func (t *Tree) Proof(i int) Proof {
	if i < 0 || i >= t.NumLeaves() {
		panic("merkle: index out of range")
	}
	hashes := make([]primitives.Hash, t.depth)
	idx := i
	for level := 0; level < t.depth; level++ {
		sibling := idx ^ 1
		hashes[level] = t.levels[level][sibling]
		idx >>= 1
	}
	return Proof{Index: uint64(i), Hashes: hashes}
}

// VerifyProof reports whether proof is a valid membership proof of leaf
// against root. The index's bits are consumed least-significant first:
// bit 0 chooses the bottom level's direction (0 ⇒ the claimed leaf is on
// the left, its sibling on the right).
//
// VerifyProof never panics; any structural mismatch (wrong number of
// sibling hashes for the implied depth, or a reconstructed root that
// disagrees with the supplied one) causes it to return false.
func VerifyProof(root primitives.Hash, proof Proof, leaf []byte) bool {
	current := leafHash(leaf)
	idx := proof.Index
	for _, sibling := range proof.Hashes {
		if idx&1 == 0 {
			current = nodeHash(current, sibling)
		} else {
			current = nodeHash(sibling, current)
		}
		idx >>= 1
	}
	return current == root
}
