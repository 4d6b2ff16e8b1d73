package mprove

import (
	"fmt"

	"github.com/mprove-go/mprove/curve"
)

// Verify checks that pf is a well-formed proof of reserves: every
// per-index branch signature verifies against the reconstructed
// difference point, and the sum of those difference points equals the
// aggregated reserve commitment pf carries.
func (pf *Proof) Verify() error {
	n := len(pf.PVec)
	if len(pf.CVec) != n || len(pf.CPrimeVec) != n || len(pf.GammaVec) != n || len(pf.SigmaVec) != n {
		return fmt.Errorf("%w: proof vectors of lengths %d/%d/%d/%d/%d disagree",
			ErrMalformedInput, len(pf.CVec), len(pf.CPrimeVec), len(pf.PVec), len(pf.GammaVec), len(pf.SigmaVec))
	}

	dVec := make([]curve.Point, n)
	for i := 0; i < n; i++ {
		d := pf.CPrimeVec[i].Sub(pf.CVec[i])
		dVec[i] = d

		if pf.GammaVec[i] == nil || pf.SigmaVec[i] == nil {
			return fmt.Errorf("%w: missing sub-signature at index %d", ErrMalformedInput, i)
		}

		gammaPk := []curve.Point{pf.CPrimeVec[i], d}
		if err := pf.GammaVec[i].Verify(pf.Message, gammaPk); err != nil {
			return fmt.Errorf("%w: index %d: %w", ErrSigVerification, i, err)
		}

		sigmaPk := []curve.Point{pf.PVec[i], d}
		if err := pf.SigmaVec[i].Verify(pf.Message, sigmaPk); err != nil {
			return fmt.Errorf("%w: index %d: %w", ErrSigVerification, i, err)
		}
	}

	cResComputed := curve.SumPoints(dVec)
	if !cResComputed.Equal(pf.CRes) {
		return ErrReserveMismatch
	}
	return nil
}
