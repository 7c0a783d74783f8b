package hbsig

import (
	"encoding/json"
	"fmt"

	"github.com/georgwiese/hbsig/internal/primitives"
	"github.com/georgwiese/hbsig/wots"
)

// PrivateKey is the human-inspectable, on-disk representation of a
// Scheme's master seed and parameters (spec §6's private key file).
type PrivateKey struct {
	SeedHex   string `json:"seed_hex"`
	Width     int    `json:"width"`
	Depth     int    `json:"depth"`
	D         uint64 `json:"d"`
	PublicKey string `json:"public_key"`
}

// MarshalPrivateKey renders scheme's configuration as the external JSON
// key file format, alongside the seed that produced it.
func MarshalPrivateKey(seed primitives.Hash, scheme *Scheme) PrivateKey {
	return PrivateKey{
		SeedHex:   primitives.HashToHex(seed),
		Width:     scheme.params.Width,
		Depth:     scheme.params.Depth,
		D:         scheme.params.D.Value(),
		PublicKey: primitives.HashToHex(scheme.PublicKey()),
	}
}

// EncodeJSON renders pk as indented JSON, matching spec §6's schema.
func (pk PrivateKey) EncodeJSON() ([]byte, error) {
	return json.MarshalIndent(pk, "", "  ")
}

// DecodePrivateKeyJSON parses a private key file.
func DecodePrivateKeyJSON(b []byte) (PrivateKey, error) {
	var pk PrivateKey
	if err := json.Unmarshal(b, &pk); err != nil {
		return PrivateKey{}, fmt.Errorf("hbsig: malformed private key JSON: %w", err)
	}
	return pk, nil
}

// Scheme reconstructs the signing Scheme this key describes and verifies
// that its derived public key matches the stored PublicKey field,
// failing loudly (spec §6) if it does not — the one place a mismatch
// indicates either file corruption or an incompatible implementation
// change, not an ordinary verification failure.
func (pk PrivateKey) Scheme() (*Scheme, primitives.Hash, error) {
	var seed primitives.Hash
	seed, err := primitives.HashFromHex(pk.SeedHex)
	if err != nil {
		return nil, primitives.Hash{}, fmt.Errorf("hbsig: private key seed_hex: %w", err)
	}

	d, err := wots.NewD(pk.D)
	if err != nil {
		return nil, primitives.Hash{}, fmt.Errorf("hbsig: private key d: %w", err)
	}

	scheme, err := NewFromSeed(seed, Params{Width: pk.Width, Depth: pk.Depth, D: d})
	if err != nil {
		return nil, primitives.Hash{}, fmt.Errorf("hbsig: reconstructing scheme: %w", err)
	}

	storedPK, err := primitives.HashFromHex(pk.PublicKey)
	if err != nil {
		return nil, primitives.Hash{}, fmt.Errorf("hbsig: private key public_key: %w", err)
	}
	if derived := scheme.PublicKey(); derived != storedPK {
		return nil, primitives.Hash{}, fmt.Errorf(
			"hbsig: public key recomputed from seed (%s) does not match the stored public key (%s); "+
				"re-run key generation or correct the private key file",
			primitives.HashToHex(derived), pk.PublicKey)
	}

	return scheme, seed, nil
}
