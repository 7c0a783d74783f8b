package primitives

import (
	"encoding/hex"
	"fmt"
)

// HashToHex encodes h as 64 lowercase hex characters, the wire format
// spec.md's external interfaces use for public keys.
func HashToHex(h Hash) string {
	return hex.EncodeToString(h[:])
}

// HashFromHex decodes a 64-character lowercase hex string into a Hash.
func HashFromHex(s string) (Hash, error) {
	var h Hash
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("hbsig: malformed hex: %w", err)
	}
	if len(b) != Size {
		return h, fmt.Errorf("hbsig: expected %d bytes, got %d", Size, len(b))
	}
	copy(h[:], b)
	return h, nil
}
