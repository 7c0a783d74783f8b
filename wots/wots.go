package wots

import (
	"fmt"

	"github.com/georgwiese/hbsig/internal/chain"
	"github.com/georgwiese/hbsig/internal/primitives"
	"github.com/georgwiese/hbsig/internal/prng"
)

// Key is an ordered sequence of L 32-byte blocks: a private key is L
// random blocks, a public key is L blocks each hashed d times.
type Key []primitives.Hash

// Signature is a Winternitz one-time signature: the parameter d the
// signer used, plus L 32-byte blocks.
type Signature struct {
	D      uint64
	Blocks []primitives.Hash
}

// PrivateKey is a one-time signing key. Sign may be called with at most
// one distinct message (repeat calls with that message are allowed); see
// the signed field.
type PrivateKey struct {
	sk     Key
	pk     Key
	d      D
	signed *primitives.Hash
}

// GenerateKey deterministically derives a private/public keypair from
// seed and d. The same seed and d always yield the same keypair.
func GenerateKey(seed primitives.Hash, d D) *PrivateKey {
	rng := prng.New(seed)
	l := d.L()

	sk := make(Key, l)
	pk := make(Key, l)
	for i := uint(0); i < l; i++ {
		sk[i] = rng.Hash()
		pk[i] = chain.Chain(sk[i], 0, uint32(d.Value()))
	}
	return &PrivateKey{sk: sk, pk: pk, d: d}
}

// PublicKey returns the public key.
func (k *PrivateKey) PublicKey() Key { return k.pk }

// Sign signs message with k.
//
// Signing is a one-time operation: calling Sign with a second, different
// message on the same key panics, since doing so would reveal enough of
// the hash chains to forge signatures of other messages. Signing the
// same message again is allowed and returns an identical signature.
func (k *PrivateKey) Sign(message primitives.Hash) Signature {
	if k.signed != nil && *k.signed != message {
		panic("wots: key has already signed a different message")
	}
	k.signed = &message

	t := DominationFreeEncode(message, k.d)
	if len(t) != len(k.sk) {
		panic("wots: encoding length does not match key length")
	}

	blocks := make([]primitives.Hash, len(k.sk))
	starts := make([]uint32, len(k.sk))
	ends := make([]uint32, len(k.sk))
	for i := range k.sk {
		blocks[i] = k.sk[i]
		starts[i] = 0
		ends[i] = uint32(t[i])
	}
	signed := chain.Batch(blocks, starts, ends)

	return Signature{D: k.d.Value(), Blocks: signed}
}

// Verify reports whether sig is a valid signature of message under pk.
// It never panics: malformed d or a length mismatch simply fail to verify.
func Verify(pk Key, message primitives.Hash, sig Signature) bool {
	recovered, ok := RecoverPublicKey(message, sig)
	if !ok {
		return false
	}
	if len(recovered) != len(pk) {
		return false
	}
	for i := range pk {
		if recovered[i] != pk[i] {
			return false
		}
	}
	return true
}

// RecoverPublicKey reconstructs the public key implied by a signature of
// message, without needing the real public key. Higher layers use this to
// keep their own signatures compact: instead of shipping a W-OTS public
// key, they ship only the signature and recompute the key on demand.
func RecoverPublicKey(message primitives.Hash, sig Signature) (Key, bool) {
	d, err := NewD(sig.D)
	if err != nil {
		return nil, false
	}
	t := DominationFreeEncode(message, d)
	if len(t) != len(sig.Blocks) {
		return nil, false
	}

	starts := make([]uint32, len(t))
	ends := make([]uint32, len(t))
	for i := range t {
		starts[i] = uint32(t[i])
		ends[i] = uint32(d.Value())
	}
	pk := chain.Batch(sig.Blocks, starts, ends)
	return pk, true
}

// String renders a human-readable summary, useful in CLI diagnostics.
func (sig Signature) String() string {
	return fmt.Sprintf("wots.Signature{d=%d, blocks=%d}", sig.D, len(sig.Blocks))
}
