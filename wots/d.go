// Package wots implements the Winternitz one-time signature scheme: key
// generation, signing and verification over hash chains built from a
// domination-free encoding of the message. A W-OTS key must sign at most
// one message; see PrivateKey.Sign.
package wots

import (
	"fmt"
	"math/bits"
)

// D is the Winternitz compression parameter. Only values of the form
// 2^(2^x) - 1 are valid: 1, 3, 15, 255.
type D struct {
	d            uint64
	logLogDPlus1 uint
}

// NewD validates d and returns the derived parameter, or an error if d is
// not of the form 2^(2^x) - 1.
func NewD(d uint64) (D, error) {
	if d == 0 || d+1 == 0 {
		return D{}, fmt.Errorf("wots: d must be one of 1, 3, 15, 255, got %d", d)
	}
	dPlus1 := d + 1
	if dPlus1&(dPlus1-1) != 0 {
		return D{}, fmt.Errorf("wots: d+1 (%d) is not a power of two", dPlus1)
	}
	w := uint(bits.Len64(dPlus1) - 1) // log2(d+1)
	logLogW := uint(bits.Len(uint(w)) - 1)
	if w == 0 || 1<<logLogW != w {
		return D{}, fmt.Errorf("wots: d+1 (%d) is not of the form 2^(2^x)", dPlus1)
	}
	return D{d: d, logLogDPlus1: logLogW}, nil
}

// MustNewD is like NewD but panics on an invalid d. Intended for
// construction-time use with literal, known-good parameters.
func MustNewD(d uint64) D {
	p, err := NewD(d)
	if err != nil {
		panic(err)
	}
	return p
}

// Value returns the raw d.
func (p D) Value() uint64 { return p.d }

// W returns the number of bits combined into one chunk.
func (p D) W() uint { return 1 << p.logLogDPlus1 }

// N0 returns the number of message chunks (256 / W).
func (p D) N0() uint { return 256 / p.W() }

// BitsC returns the number of checksum bits.
func (p D) BitsC() uint {
	w := p.W()
	raw := w + 8 - p.logLogDPlus1
	// round up to the next multiple of w
	return ((raw + w - 1) / w) * w
}

// L returns the key/signature length, in 32-byte blocks.
func (p D) L() uint {
	return (256 + p.BitsC()) / p.W()
}
