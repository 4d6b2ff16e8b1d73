package ring

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mprove-go/mprove/curve"
)

func TestLSAGCompleteness(t *testing.T) {
	for _, n := range []int{2, 3, 8} {
		for signer := 0; signer < n; signer++ {
			pk, x := randomRing(t, n, signer)
			message, err := curve.RandomPoint(rand.Reader)
			require.NoError(t, err)

			sig, err := GenLSAG(message, pk, x, signer)
			require.NoError(t, err)
			require.NoError(t, sig.Verify(message, pk))
			require.False(t, sig.I.IsIdentity())
		}
	}
}

func TestLSAGKeyImageLinkableAcrossRings(t *testing.T) {
	x, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	ownPk := curve.ScalarBaseMult(x)

	pkA, _ := randomRing(t, 4, 1)
	pkA[1] = ownPk
	pkB, _ := randomRing(t, 6, 3)
	pkB[3] = ownPk

	messageA, err := curve.RandomPoint(rand.Reader)
	require.NoError(t, err)
	messageB, err := curve.RandomPoint(rand.Reader)
	require.NoError(t, err)

	sigA, err := GenLSAG(messageA, pkA, x, 1)
	require.NoError(t, err)
	sigB, err := GenLSAG(messageB, pkB, x, 3)
	require.NoError(t, err)

	require.True(t, sigA.I.Equal(sigB.I))
}

func TestLSAGKeyImageDiffersForDifferentSigners(t *testing.T) {
	pk, x1 := randomRing(t, 4, 0)
	x2, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	pk[1] = curve.ScalarBaseMult(x2)

	message, err := curve.RandomPoint(rand.Reader)
	require.NoError(t, err)

	sig1, err := GenLSAG(message, pk, x1, 0)
	require.NoError(t, err)
	sig2, err := GenLSAG(message, pk, x2, 1)
	require.NoError(t, err)

	require.False(t, sig1.I.Equal(sig2.I))
}

func TestLSAGRejectsTamperedKeyImage(t *testing.T) {
	pk, x := randomRing(t, 4, 2)
	message, err := curve.RandomPoint(rand.Reader)
	require.NoError(t, err)

	sig, err := GenLSAG(message, pk, x, 2)
	require.NoError(t, err)

	decoy, err := curve.RandomPoint(rand.Reader)
	require.NoError(t, err)

	tampered := *sig
	tampered.I = decoy
	require.ErrorIs(t, tampered.Verify(message, pk), ErrLSAGVerify)
}

func TestLSAGVerifyRejectsMalformed(t *testing.T) {
	pk, x := randomRing(t, 3, 0)
	message, err := curve.RandomPoint(rand.Reader)
	require.NoError(t, err)
	sig, err := GenLSAG(message, pk, x, 0)
	require.NoError(t, err)

	identityImage := *sig
	identityImage.I = curve.IdentityPoint()
	require.ErrorIs(t, identityImage.Verify(message, pk), ErrMalformedSignature)

	short := *sig
	short.SVec = sig.SVec[:len(sig.SVec)-1]
	require.ErrorIs(t, short.Verify(message, pk), ErrMalformedSignature)
}

func TestGenLSAGRejectsSmallRing(t *testing.T) {
	pk := []curve.Point{curve.Basepoint()}
	x := curve.OneScalar()
	message, err := curve.RandomPoint(rand.Reader)
	require.NoError(t, err)

	_, err = GenLSAG(message, pk, x, 0)
	require.Error(t, err)
}
