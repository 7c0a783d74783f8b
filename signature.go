package hbsig

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/georgwiese/hbsig/internal/primitives"
	"github.com/georgwiese/hbsig/merkle"
	"github.com/georgwiese/hbsig/qots"
	"github.com/georgwiese/hbsig/wots"
)

// PublicKeySignature is one link of a Signature's chain: the next
// subtree's public key, and the current subtree's q-indexed signature
// over it.
type PublicKeySignature struct {
	NextPublicKey primitives.Hash `cbor:"next_pk"`
	Signature     qots.Signature  `cbor:"sig"`
}

// Signature is a StatelessMerkleSignature: a chain of q-indexed
// signatures from the scheme's root down to a pseudo-randomly chosen
// leaf, plus that leaf's signature over the message hash.
type Signature struct {
	PublicKeySignatures []PublicKeySignature `cbor:"public_key_signatures"`
	MessageSignature    qots.Signature       `cbor:"message_signature"`
}

// wireProof and wireOTS mirror spec §6's qindexed_sig schema field names;
// qots.Signature and its nested types already use Go-idiomatic field
// names internally, so the wire struct tags below are what give the
// encoded bytes the documented, implementation-independent shape.
type wireProof struct {
	Index     uint64            `cbor:"index"`
	HashChain []primitives.Hash `cbor:"hash_chain"`
}

type wireOTS struct {
	D      uint64            `cbor:"d"`
	Blocks []primitives.Hash `cbor:"blocks"`
}

type wireQOTSSignature struct {
	Proof            wireProof `cbor:"proof"`
	OneTimeSignature wireOTS   `cbor:"one_time_signature"`
}

func toWire(sig qots.Signature) wireQOTSSignature {
	return wireQOTSSignature{
		Proof: wireProof{
			Index:     sig.Proof.Index,
			HashChain: sig.Proof.Hashes,
		},
		OneTimeSignature: wireOTS{
			D:      sig.OneTimeSignature.D,
			Blocks: sig.OneTimeSignature.Blocks,
		},
	}
}

func fromWire(w wireQOTSSignature) qots.Signature {
	return qots.Signature{
		Proof: merkle.Proof{
			Index:  w.Proof.Index,
			Hashes: w.Proof.HashChain,
		},
		OneTimeSignature: wots.Signature{
			D:      w.OneTimeSignature.D,
			Blocks: w.OneTimeSignature.Blocks,
		},
	}
}

type wirePKSignature struct {
	NextPublicKey primitives.Hash   `cbor:"next_pk"`
	Signature     wireQOTSSignature `cbor:"sig"`
}

type wireSignature struct {
	PublicKeySignatures []wirePKSignature `cbor:"public_key_signatures"`
	MessageSignature    wireQOTSSignature `cbor:"message_signature"`
}

// EncodeSignature renders sig as the compact, self-describing CBOR
// encoding spec §6 specifies, suitable for writing to a `<path>.signature`
// file. The encoding is unambiguous and round-trip stable.
func EncodeSignature(sig Signature) ([]byte, error) {
	w := wireSignature{
		MessageSignature: toWire(sig.MessageSignature),
	}
	w.PublicKeySignatures = make([]wirePKSignature, len(sig.PublicKeySignatures))
	for i, pkSig := range sig.PublicKeySignatures {
		w.PublicKeySignatures[i] = wirePKSignature{
			NextPublicKey: pkSig.NextPublicKey,
			Signature:     toWire(pkSig.Signature),
		}
	}

	b, err := cbor.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("hbsig: encoding signature: %w", err)
	}
	return b, nil
}

// DecodeSignature parses a signature previously produced by
// EncodeSignature. It returns a decoding error for malformed or
// truncated input; it never returns a signature that might silently
// misverify due to a partially-decoded structure.
func DecodeSignature(b []byte) (Signature, error) {
	var w wireSignature
	if err := cbor.Unmarshal(b, &w); err != nil {
		return Signature{}, fmt.Errorf("hbsig: decoding signature: %w", err)
	}

	sig := Signature{
		MessageSignature:    fromWire(w.MessageSignature),
		PublicKeySignatures: make([]PublicKeySignature, len(w.PublicKeySignatures)),
	}
	for i, pkSig := range w.PublicKeySignatures {
		sig.PublicKeySignatures[i] = PublicKeySignature{
			NextPublicKey: pkSig.NextPublicKey,
			Signature:     fromWire(pkSig.Signature),
		}
	}
	return sig, nil
}
