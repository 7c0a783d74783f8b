package hbsig

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/georgwiese/hbsig/internal/primitives"
)

func TestSignatureCBORRoundTrip(t *testing.T) {
	seed := primitives.SHA256([]byte("cbor round trip seed"))
	scheme, err := NewFromSeed(seed, testParams())
	require.NoError(t, err)

	m := primitives.SHA256([]byte("a message to sign"))
	sig, err := scheme.Sign(m)
	require.NoError(t, err)

	b, err := EncodeSignature(sig)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	decoded, err := DecodeSignature(b)
	require.NoError(t, err)
	require.Equal(t, sig, decoded)

	require.True(t, Verify(scheme.PublicKey(), m, decoded, testParams()))
}

func TestSignatureCBOREncodingIsDeterministic(t *testing.T) {
	seed := primitives.SHA256([]byte("cbor determinism seed"))
	scheme, err := NewFromSeed(seed, testParams())
	require.NoError(t, err)

	m := primitives.SHA256([]byte("another message"))
	sig, err := scheme.Sign(m)
	require.NoError(t, err)

	b1, err := EncodeSignature(sig)
	require.NoError(t, err)
	b2, err := EncodeSignature(sig)
	require.NoError(t, err)
	require.Equal(t, b1, b2)
}

func TestDecodeSignatureRejectsGarbage(t *testing.T) {
	_, err := DecodeSignature([]byte{0xff, 0x00, 0x01})
	require.Error(t, err)
}

func TestDecodeSignatureRejectsTruncatedInput(t *testing.T) {
	seed := primitives.SHA256([]byte("truncation seed"))
	scheme, err := NewFromSeed(seed, testParams())
	require.NoError(t, err)

	m := primitives.SHA256([]byte("message"))
	sig, err := scheme.Sign(m)
	require.NoError(t, err)

	b, err := EncodeSignature(sig)
	require.NoError(t, err)

	_, err = DecodeSignature(b[:len(b)/2])
	require.Error(t, err)
}
