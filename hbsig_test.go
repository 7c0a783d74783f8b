package hbsig

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/georgwiese/hbsig/internal/primitives"
	"github.com/georgwiese/hbsig/wots"
)

func testParams() Params {
	return Params{Width: 16, Depth: 5, D: wots.MustNewD(255)}
}

func allBytes(b byte) primitives.Hash {
	var h primitives.Hash
	for i := range h {
		h[i] = b
	}
	return h
}

func TestZeroSeedScenario(t *testing.T) {
	var seed primitives.Hash // 0x00...00
	scheme, err := NewFromSeed(seed, testParams())
	require.NoError(t, err)

	m := allBytes(0x01)
	sig, err := scheme.Sign(m)
	require.NoError(t, err)
	require.True(t, Verify(scheme.PublicKey(), m, sig, testParams()))

	require.False(t, Verify(scheme.PublicKey(), allBytes(0x02), sig, testParams()))
}

func TestRoundTrip(t *testing.T) {
	seed := primitives.SHA256([]byte("master seed"))
	scheme, err := NewFromSeed(seed, testParams())
	require.NoError(t, err)

	m := primitives.SHA256([]byte("hello, world"))
	sig, err := scheme.Sign(m)
	require.NoError(t, err)
	require.True(t, Verify(scheme.PublicKey(), m, sig, testParams()))
}

func TestDeterminism(t *testing.T) {
	seed := primitives.SHA256([]byte("master seed"))
	s1, err := NewFromSeed(seed, testParams())
	require.NoError(t, err)
	s2, err := NewFromSeed(seed, testParams())
	require.NoError(t, err)

	require.Equal(t, s1.PublicKey(), s2.PublicKey())

	m := primitives.SHA256([]byte("message"))
	sig1, err := s1.Sign(m)
	require.NoError(t, err)
	sig2, err := s2.Sign(m)
	require.NoError(t, err)
	require.Equal(t, sig1, sig2)
}

func TestTamperSensitivity(t *testing.T) {
	seed := primitives.SHA256([]byte("master seed"))
	scheme, err := NewFromSeed(seed, testParams())
	require.NoError(t, err)

	m := primitives.SHA256([]byte("message"))
	sig, err := scheme.Sign(m)
	require.NoError(t, err)
	pk := scheme.PublicKey()
	require.True(t, Verify(pk, m, sig, testParams()))

	// Tamper with the message.
	m2 := m
	m2[0] ^= 0xff
	require.False(t, Verify(pk, m2, sig, testParams()))

	// Tamper with the public key.
	pk2 := pk
	pk2[0] ^= 0xff
	require.False(t, Verify(pk2, m, sig, testParams()))

	// Tamper with the signature.
	sigTampered := sig
	sigTampered.MessageSignature.OneTimeSignature.Blocks[0][0] ^= 0xff
	require.False(t, Verify(pk, m, sigTampered, testParams()))
}

func TestWrongKeyRejection(t *testing.T) {
	scheme1, err := NewFromSeed(primitives.SHA256([]byte("seed1")), testParams())
	require.NoError(t, err)
	scheme2, err := NewFromSeed(primitives.SHA256([]byte("seed2")), testParams())
	require.NoError(t, err)

	m := primitives.SHA256([]byte("message"))
	sig, err := scheme1.Sign(m)
	require.NoError(t, err)
	require.False(t, Verify(scheme2.PublicKey(), m, sig, testParams()))
}

func TestVerifyRejectsWrongChainLength(t *testing.T) {
	seed := primitives.SHA256([]byte("master seed"))
	scheme, err := NewFromSeed(seed, testParams())
	require.NoError(t, err)

	m := primitives.SHA256([]byte("message"))
	sig, err := scheme.Sign(m)
	require.NoError(t, err)

	truncated := sig
	truncated.PublicKeySignatures = truncated.PublicKeySignatures[:len(truncated.PublicKeySignatures)-1]
	require.False(t, Verify(scheme.PublicKey(), m, truncated, testParams()))
}

func TestSmallWidthMultipleSignatures(t *testing.T) {
	seed := primitives.SHA256([]byte("master seed"))
	params := Params{Width: 4, Depth: 5, D: wots.MustNewD(15)}
	scheme, err := NewFromSeed(seed, params)
	require.NoError(t, err)

	for i := byte(0); i < 10; i++ {
		m := allBytes(i)
		sig, err := scheme.Sign(m)
		require.NoError(t, err)
		require.True(t, Verify(scheme.PublicKey(), m, sig, params))
	}
}
