package qots

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/georgwiese/hbsig/internal/primitives"
	"github.com/georgwiese/hbsig/wots"
)

func msg(b byte) primitives.Hash {
	var m primitives.Hash
	for i := range m {
		m[i] = b
	}
	return m
}

func TestNewRejectsNonPowerOfTwoQ(t *testing.T) {
	_, err := New(3, primitives.SHA256([]byte("seed")), wots.MustNewD(15))
	require.Error(t, err)
}

func TestSignAndVerifyDistinctIndices(t *testing.T) {
	scheme, err := New(4, primitives.SHA256([]byte("seed")), wots.MustNewD(15))
	require.NoError(t, err)

	sig0 := scheme.Sign(0, msg(1))
	sig3 := scheme.Sign(3, msg(2))

	pk := scheme.PublicKey()
	require.True(t, Verify(pk, 4, 0, msg(1), sig0))
	require.True(t, Verify(pk, 4, 3, msg(2), sig3))
}

func TestVerifyRejectsSwappedIndices(t *testing.T) {
	scheme, err := New(4, primitives.SHA256([]byte("seed")), wots.MustNewD(15))
	require.NoError(t, err)

	sig0 := scheme.Sign(0, msg(1))
	sig3 := scheme.Sign(3, msg(2))
	pk := scheme.PublicKey()

	require.False(t, Verify(pk, 4, 3, msg(2), sig0))
	require.False(t, Verify(pk, 4, 0, msg(1), sig3))
}

func TestVerifyRejectsWrongRoot(t *testing.T) {
	scheme, err := New(4, primitives.SHA256([]byte("seed")), wots.MustNewD(15))
	require.NoError(t, err)
	other, err := New(4, primitives.SHA256([]byte("other-seed")), wots.MustNewD(15))
	require.NoError(t, err)

	sig := scheme.Sign(0, msg(1))
	require.False(t, Verify(other.PublicKey(), 4, 0, msg(1), sig))
}

func TestVerifyRejectsWrongQ(t *testing.T) {
	scheme, err := New(4, primitives.SHA256([]byte("seed")), wots.MustNewD(15))
	require.NoError(t, err)

	sig := scheme.Sign(0, msg(1))
	pk := scheme.PublicKey()
	require.False(t, Verify(pk, 8, 0, msg(1), sig))
	require.False(t, Verify(pk, 3, 0, msg(1), sig))
}

func TestSignOutOfRangePanics(t *testing.T) {
	scheme, err := New(4, primitives.SHA256([]byte("seed")), wots.MustNewD(15))
	require.NoError(t, err)
	require.Panics(t, func() { scheme.Sign(4, msg(1)) })
}
