// Package merkle implements a binary Merkle tree over byte-slice leaves
// with membership proofs: leaves are domain-separated from internal
// nodes so a leaf hash can never be replayed as an internal node hash.
package merkle

import (
	"fmt"

	"github.com/georgwiese/hbsig/internal/primitives"
)

// Tree is a Merkle tree built over a power-of-two number of leaves.
type Tree struct {
	depth int
	// levels[0] holds the leaf hashes, levels[len-1] holds the root.
	levels [][]primitives.Hash
}

// leafHash domain-separates a leaf from an internal node by appending a
// zero byte before hashing, so no leaf hash can collide with an internal
// node's H(left‖right).
func leafHash(leaf []byte) primitives.Hash {
	buf := make([]byte, len(leaf)+1)
	copy(buf, leaf)
	buf[len(leaf)] = 0x00
	return primitives.SHA256(buf)
}

func nodeHash(left, right primitives.Hash) primitives.Hash {
	buf := make([]byte, 2*primitives.Size)
	copy(buf[:primitives.Size], left[:])
	copy(buf[primitives.Size:], right[:])
	return primitives.SHA256(buf)
}

// New builds a Merkle tree over leaves, which must be serialized byte
// slices and whose count must be a power of two (including 1, a
// single-leaf tree whose root equals its one leaf hash).
func New(leaves [][]byte) (*Tree, error) {
	n := len(leaves)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("merkle: leaf count %d is not a power of two", n)
	}

	level := make([]primitives.Hash, n)
	for i, leaf := range leaves {
		level[i] = leafHash(leaf)
	}

	levels := [][]primitives.Hash{level}
	for len(level) > 1 {
		next := make([]primitives.Hash, len(level)/2)
		for i := range next {
			next[i] = nodeHash(level[2*i], level[2*i+1])
		}
		levels = append(levels, next)
		level = next
	}

	return &Tree{depth: len(levels) - 1, levels: levels}, nil
}

// Root returns the tree's root hash.
func (t *Tree) Root() primitives.Hash {
	return t.levels[len(t.levels)-1][0]
}

// Depth returns log2(leaf count).
func (t *Tree) Depth() int {
	return t.depth
}

// NumLeaves returns the number of leaves the tree was built over.
func (t *Tree) NumLeaves() int {
	return len(t.levels[0])
}
