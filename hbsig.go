package hbsig

import (
	"encoding/binary"
	"fmt"

	"github.com/georgwiese/hbsig/internal/primitives"
	"github.com/georgwiese/hbsig/internal/prng"
	"github.com/georgwiese/hbsig/qots"
	"github.com/georgwiese/hbsig/wots"
)

// HMAC domain-separation tags for deriving the scheme's PRF keys from the
// master seed (spec §4.7): {0} for the root subtree seed, {1} for the
// subtree-seed PRF key, {2} for the path PRF key.
var (
	rootSeedTag   = []byte{0}
	seedPRFKeyTag = []byte{1}
	pathPRFKeyTag = []byte{2}
)

// Params configures a Scheme: Width q-indexed instances branch at every
// level, to a virtual tree of the given Depth, with W-OTS parameter D.
type Params struct {
	Width int
	Depth int
	D     wots.D
}

// Scheme is the stateless Merkle signature scheme: a virtual tree of
// q-indexed instances, arranged so that the public key is a pure
// function of the master seed and Params, and signing needs no state
// beyond that seed.
type Scheme struct {
	params     Params
	seedPRFKey primitives.Hash
	pathPRFKey primitives.Hash
	root       *qots.Scheme
}

// NewFromSeed deterministically derives a Scheme from a 32-byte master
// seed and parameters. The same seed and parameters always yield the
// same public key and the same signatures.
func NewFromSeed(seed primitives.Hash, params Params) (*Scheme, error) {
	if params.Depth <= 0 {
		return nil, fmt.Errorf("hbsig: depth must be positive, got %d", params.Depth)
	}

	rootSeed := primitives.HMACSHA256(seed, rootSeedTag)
	root, err := qots.New(params.Width, rootSeed, params.D)
	if err != nil {
		return nil, fmt.Errorf("hbsig: %w", err)
	}

	return &Scheme{
		params:     params,
		seedPRFKey: primitives.HMACSHA256(seed, seedPRFKeyTag),
		pathPRFKey: primitives.HMACSHA256(seed, pathPRFKeyTag),
		root:       root,
	}, nil
}

// PublicKey returns the scheme's 32-byte public key: a pure function of
// the master seed and Params.
func (s *Scheme) PublicKey() primitives.Hash {
	return s.root.PublicKey()
}

// Params returns the scheme's parameters.
func (s *Scheme) Params() Params {
	return s.params
}

// pathBytes encodes a subtree path as the concatenation of each index's
// big-endian uint64 representation, the input to the seed-derivation PRF.
func pathBytes(path []int) []byte {
	buf := make([]byte, 8*len(path))
	for i, p := range path {
		binary.BigEndian.PutUint64(buf[8*i:8*i+8], uint64(p))
	}
	return buf
}

// subtreeScheme lazily derives the q-indexed scheme at path. The root
// case, path == nil, reuses the cached root scheme instead of
// re-deriving it.
func (s *Scheme) subtreeScheme(path []int) (*qots.Scheme, error) {
	if len(path) == 0 {
		return s.root, nil
	}
	seed := primitives.HMACSHA256(s.seedPRFKey, pathBytes(path))
	return qots.New(s.params.Width, seed, s.params.D)
}

// derivePath deterministically selects the leaf path for message,
// seeding a stream from HMAC(pathPRFKey, message) and drawing Depth
// uniform values in [0, Width).
func (s *Scheme) derivePath(message primitives.Hash) []int {
	seed := primitives.HMACSHA256(s.pathPRFKey, message[:])
	rng := prng.New(seed)
	path := make([]int, s.params.Depth)
	for i := range path {
		path[i] = rng.Intn(s.params.Width)
	}
	return path
}

// Sign produces a signature for a 256-bit message digest. Two calls on
// the same Scheme with the same message always return identical
// signatures; there is no per-signature state to update.
func (s *Scheme) Sign(message primitives.Hash) (Signature, error) {
	path := s.derivePath(message)

	pkSignatures := make([]PublicKeySignature, 0, s.params.Depth)
	current := s.root
	for k, index := range path {
		next, err := s.subtreeScheme(path[:k+1])
		if err != nil {
			return Signature{}, fmt.Errorf("hbsig: deriving subtree at depth %d: %w", k, err)
		}
		nextPK := next.PublicKey()
		sig := current.Sign(index, nextPK)
		pkSignatures = append(pkSignatures, PublicKeySignature{NextPublicKey: nextPK, Signature: sig})
		current = next
	}

	// The message is hashed again even though it is already a digest, to
	// domain-separate the leaf payload from the intermediate "public key"
	// payloads above it: otherwise a crafted "public key" presented at a
	// leaf position could later be extended into a signature on an
	// arbitrary message.
	messageSignature := current.Sign(path[len(path)-1], primitives.SHA256(message[:]))

	return Signature{
		PublicKeySignatures: pkSignatures,
		MessageSignature:    messageSignature,
	}, nil
}

// Verify reports whether sig is a valid signature of message under pk,
// for a scheme configured with params. It never panics: any structural
// failure (an out-of-range index, a bad q-indexed signature at any
// level, or a public-key-signature chain of the wrong length) simply
// fails to verify.
//
// The chain's length is required to equal params.Depth exactly (rather
// than merely passing each individual link's check): see SPEC_FULL.md §8's
// resolution of spec's "arbitrary length" open question.
func Verify(pk primitives.Hash, message primitives.Hash, sig Signature, params Params) bool {
	if len(sig.PublicKeySignatures) != params.Depth {
		return false
	}

	current := pk
	for _, pkSig := range sig.PublicKeySignatures {
		if !qots.Verify(current, params.Width, int(pkSig.Signature.Proof.Index), pkSig.NextPublicKey, pkSig.Signature) {
			return false
		}
		current = pkSig.NextPublicKey
	}

	return qots.Verify(current, params.Width, int(sig.MessageSignature.Proof.Index), primitives.SHA256(message[:]), sig.MessageSignature)
}
