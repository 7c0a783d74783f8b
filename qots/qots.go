// Package qots implements the q-indexed few-time signature scheme: q
// independent Winternitz one-time keys bundled under a single Merkle
// root, allowing up to q signatures under one compact 32-byte public
// key.
package qots

import (
	"fmt"
	"math/bits"

	"github.com/georgwiese/hbsig/internal/primitives"
	"github.com/georgwiese/hbsig/internal/prng"
	"github.com/georgwiese/hbsig/merkle"
	"github.com/georgwiese/hbsig/wots"
)

// Signature is a q-indexed signature: a Merkle proof that the recovered
// W-OTS public key belongs under the scheme's root, plus the W-OTS
// signature itself.
type Signature struct {
	Proof            merkle.Proof
	OneTimeSignature wots.Signature
}

// Scheme owns q W-OTS instances and the Merkle tree over their public
// keys. Its public key is the tree's 32-byte root.
type Scheme struct {
	q    int
	d    wots.D
	keys []*wots.PrivateKey
	tree *merkle.Tree
}

// serializePublicKey renders a W-OTS key as the flat concatenation of its
// L 32-byte blocks, the deterministic leaf encoding the Merkle tree is
// built over.
func serializePublicKey(k wots.Key) []byte {
	out := make([]byte, 0, len(k)*primitives.Size)
	for _, block := range k {
		out = append(out, block[:]...)
	}
	return out
}

// New deterministically derives q W-OTS instances from seed and builds
// the Merkle tree over their public keys. q must be a power of two.
func New(q int, seed primitives.Hash, d wots.D) (*Scheme, error) {
	if q <= 0 || q&(q-1) != 0 {
		return nil, fmt.Errorf("qots: q=%d must be a power of two", q)
	}

	rng := prng.New(seed)
	keys := make([]*wots.PrivateKey, q)
	leaves := make([][]byte, q)
	for i := 0; i < q; i++ {
		keys[i] = wots.GenerateKey(rng.Hash(), d)
		leaves[i] = serializePublicKey(keys[i].PublicKey())
	}

	tree, err := merkle.New(leaves)
	if err != nil {
		return nil, fmt.Errorf("qots: %w", err)
	}

	return &Scheme{q: q, d: d, keys: keys, tree: tree}, nil
}

// PublicKey returns the scheme's 32-byte public key (the Merkle root).
func (s *Scheme) PublicKey() primitives.Hash {
	return s.tree.Root()
}

// Sign signs message using the i-th W-OTS instance, i in [0, q). Like the
// underlying W-OTS key, signing a second, different message at the same
// index panics.
func (s *Scheme) Sign(i int, message primitives.Hash) Signature {
	if i < 0 || i >= s.q {
		panic("qots: index out of range")
	}
	return Signature{
		Proof:            s.tree.Proof(i),
		OneTimeSignature: s.keys[i].Sign(message),
	}
}

// Verify reports whether sig is a valid signature of (i, message) against
// root, for a scheme with q instances. It never panics: any structural
// mismatch (wrong index, wrong-depth proof, bad Merkle proof, malformed
// W-OTS signature, invalid d) simply fails to verify.
func Verify(root primitives.Hash, q int, i int, message primitives.Hash, sig Signature) bool {
	if q <= 0 || q&(q-1) != 0 {
		return false
	}
	if i < 0 || i >= q {
		return false
	}
	if sig.Proof.Index != uint64(i) {
		return false
	}
	depth := bits.Len(uint(q)) - 1
	if len(sig.Proof.Hashes) != depth {
		return false
	}
	pk, ok := wots.RecoverPublicKey(message, sig.OneTimeSignature)
	if !ok {
		return false
	}
	return merkle.VerifyProof(root, sig.Proof, serializePublicKey(pk))
}
