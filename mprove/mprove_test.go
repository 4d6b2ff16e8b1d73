package mprove

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mprove-go/mprove/curve"
)

// buildRing fabricates a ring of n commitment/address pairs. The
// indices in ownedIndices receive matching secret keys (returned in
// ring order) and are flagged owned in the returned witness; all other
// addresses are random points with unknown discrete logs. Every
// commitment is a random multiple of G.
func buildRing(t *testing.T, n int, ownedIndices []int) (Statement, Witness) {
	t.Helper()
	owned := make(map[int]bool, len(ownedIndices))
	for _, i := range ownedIndices {
		owned[i] = true
	}

	cVec := make([]curve.Point, n)
	pVec := make([]curve.Point, n)
	eVec := make([]bool, n)
	var xVec []curve.Scalar

	for i := 0; i < n; i++ {
		amount, err := curve.RandomScalar(rand.Reader)
		require.NoError(t, err)
		cVec[i] = curve.ScalarBaseMult(amount)

		if owned[i] {
			x, err := curve.RandomScalar(rand.Reader)
			require.NoError(t, err)
			pVec[i] = curve.ScalarBaseMult(x)
			eVec[i] = true
			xVec = append(xVec, x)
		} else {
			p, err := curve.RandomPoint(rand.Reader)
			require.NoError(t, err)
			pVec[i] = p
		}
	}

	return Statement{CVec: cVec, PVec: pVec}, Witness{XVec: xVec, EVec: eVec}
}

func TestProveVerifyCompleteness(t *testing.T) {
	cases := []struct {
		name   string
		n      int
		owners []int
	}{
		{"two-one-owned", 2, []int{1}},
		{"four-all-owned", 4, []int{0, 1, 2, 3}},
		{"four-none-owned", 4, nil},
		{"eight-three-owned", 8, []int{1, 4, 6}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stmt, wit := buildRing(t, tc.n, tc.owners)

			pf, err := Prove(stmt, wit)
			require.NoError(t, err)
			assert.NoError(t, pf.Verify())
		})
	}
}

func TestProveRejectsMismatchedWitness(t *testing.T) {
	stmt, wit := buildRing(t, 4, []int{0, 2})
	wit.XVec = wit.XVec[:1]

	_, err := Prove(stmt, wit)
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestProveRejectsMismatchedVectorLengths(t *testing.T) {
	stmt, wit := buildRing(t, 4, []int{1})
	stmt.CVec = stmt.CVec[:3]

	_, err := Prove(stmt, wit)
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestVerifyRejectsTamperedCommitment(t *testing.T) {
	stmt, wit := buildRing(t, 8, []int{0, 3, 5})
	pf, err := Prove(stmt, wit)
	require.NoError(t, err)

	decoy, err := curve.RandomPoint(rand.Reader)
	require.NoError(t, err)
	pf.CPrimeVec[0] = decoy

	require.Error(t, pf.Verify())
}

func TestVerifyRejectsTamperedReserveCommitment(t *testing.T) {
	stmt, wit := buildRing(t, 6, []int{2})
	pf, err := Prove(stmt, wit)
	require.NoError(t, err)

	decoy, err := curve.RandomPoint(rand.Reader)
	require.NoError(t, err)
	pf.CRes = decoy

	require.ErrorIs(t, pf.Verify(), ErrReserveMismatch)
}

func TestLinkableProofsShareKeyImageForSharedOwnedIndex(t *testing.T) {
	x, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	sharedAddr := curve.ScalarBaseMult(x)

	stmtA, witA := buildRing(t, 4, []int{1})
	stmtA.PVec[1] = sharedAddr
	witA.XVec[0] = x

	stmtB, witB := buildRing(t, 5, []int{3})
	stmtB.PVec[3] = sharedAddr
	witB.XVec[0] = x

	pfA, err := Prove(stmtA, witA)
	require.NoError(t, err)
	pfB, err := Prove(stmtB, witB)
	require.NoError(t, err)

	require.NoError(t, pfA.Verify())
	require.NoError(t, pfB.Verify())

	assert.True(t, pfA.SigmaVec[1].I.Equal(pfB.SigmaVec[3].I))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	stmt, wit := buildRing(t, 5, []int{0, 4})
	pf, err := Prove(stmt, wit)
	require.NoError(t, err)

	data, err := pf.Encode()
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.NoError(t, decoded.Verify())
}
