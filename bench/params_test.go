package bench

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mprove-go/mprove/mprove"
)

func TestParamsValidate(t *testing.T) {
	require.NoError(t, Params{RingSize: 4, OwnedCount: 2, Iterations: 1}.Validate())
	require.Error(t, Params{RingSize: 0, OwnedCount: 0, Iterations: 1}.Validate())
	require.Error(t, Params{RingSize: 4, OwnedCount: 5, Iterations: 1}.Validate())
	require.Error(t, Params{RingSize: 4, OwnedCount: -1, Iterations: 1}.Validate())
	require.Error(t, Params{RingSize: 4, OwnedCount: 1, Iterations: 0}.Validate())
}

func TestOwnedIndicesSpreadAcrossWindows(t *testing.T) {
	indices, err := ownedIndices(100, 4)
	require.NoError(t, err)
	require.Len(t, indices, 4)

	for w, idx := range indices {
		windowStart := w * 25
		windowEnd := windowStart + 25
		if w == len(indices)-1 {
			windowEnd = 100
		}
		require.GreaterOrEqual(t, idx, windowStart)
		require.Less(t, idx, windowEnd)
	}
}

func TestOwnedIndicesEmptyWhenNoneOwned(t *testing.T) {
	indices, err := ownedIndices(10, 0)
	require.NoError(t, err)
	require.Empty(t, indices)
}

func TestGenParamsProducesVerifiableStatement(t *testing.T) {
	stmt, wit, err := GenParams(Params{RingSize: 10, OwnedCount: 3, Iterations: 1})
	require.NoError(t, err)
	require.Len(t, stmt.CVec, 10)
	require.Len(t, stmt.PVec, 10)
	require.Len(t, wit.EVec, 10)
	require.Len(t, wit.XVec, 3)

	pf, err := mprove.Prove(stmt, wit)
	require.NoError(t, err)
	require.NoError(t, pf.Verify())
}

func TestGenParamsRejectsInvalidParams(t *testing.T) {
	_, _, err := GenParams(Params{RingSize: 4, OwnedCount: 9, Iterations: 1})
	require.Error(t, err)
}
