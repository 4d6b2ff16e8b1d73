package mprove

import (
	"crypto/rand"
	"fmt"

	"github.com/mprove-go/mprove/curve"
	"github.com/mprove-go/mprove/ring"
)

// ownedIndex and unownedIndex select which ring slot carries the real
// witness inside each per-index pair of signatures: the branch that
// knows the secret scalar signs at index 0, the decoy branch at index 1.
const (
	ownedIndex   = 0
	unownedIndex = 1
)

// Prove builds a proof that the prover controls the discrete logs of
// stmt.PVec at every index flagged owned in wit.EVec, and that the sum
// of the corresponding hidden commitment amounts is reflected in the
// proof's aggregated reserve commitment.
//
// len(stmt.CVec), len(stmt.PVec) and len(wit.EVec) must all agree, and
// len(wit.XVec) must equal the number of true entries in wit.EVec, in
// the same relative order as those entries appear in EVec.
func Prove(stmt Statement, wit Witness) (*Proof, error) {
	n := len(stmt.PVec)
	if len(stmt.CVec) != n || len(wit.EVec) != n {
		return nil, fmt.Errorf("%w: cVec/pVec/eVec lengths %d/%d/%d disagree",
			ErrMalformedInput, len(stmt.CVec), len(stmt.PVec), len(wit.EVec))
	}
	ownedCount := 0
	for _, owned := range wit.EVec {
		if owned {
			ownedCount++
		}
	}
	if len(wit.XVec) != ownedCount {
		return nil, fmt.Errorf("%w: %d secret keys supplied for %d owned indices",
			ErrMalformedInput, len(wit.XVec), ownedCount)
	}

	message, err := curve.RandomPoint(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("mprove: sampling proof message: %w", err)
	}

	cPrimeVec := make([]curve.Point, n)
	dVec := make([]curve.Point, n)
	gammaVec := make([]*ring.Sig, n)
	sigmaVec := make([]*ring.LSAGSig, n)

	xi := 0
	for i := 0; i < n; i++ {
		z, err := curve.RandomScalar(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("mprove: sampling z_vec[%d]: %w", i, err)
		}

		if wit.EVec[i] {
			cPrimeVec[i] = curve.ScalarBaseMult(z)
			d := cPrimeVec[i].Sub(stmt.CVec[i])
			dVec[i] = d

			gammaPk := []curve.Point{cPrimeVec[i], d}
			gamma, err := ring.GenRingSig(message, gammaPk, z, ownedIndex)
			if err != nil {
				return nil, fmt.Errorf("mprove: generating ring signature at index %d: %w", i, err)
			}

			sigmaPk := []curve.Point{stmt.PVec[i], d}
			sigma, err := ring.GenLSAG(message, sigmaPk, wit.XVec[xi], ownedIndex)
			if err != nil {
				return nil, fmt.Errorf("mprove: generating LSAG at index %d: %w", i, err)
			}
			xi++

			gammaVec[i] = gamma
			sigmaVec[i] = sigma
		} else {
			d := curve.ScalarBaseMult(z)
			cPrimeVec[i] = d.Add(stmt.CVec[i])
			dVec[i] = d

			gammaPk := []curve.Point{cPrimeVec[i], d}
			gamma, err := ring.GenRingSig(message, gammaPk, z, unownedIndex)
			if err != nil {
				return nil, fmt.Errorf("mprove: generating ring signature at index %d: %w", i, err)
			}

			sigmaPk := []curve.Point{stmt.PVec[i], d}
			sigma, err := ring.GenLSAG(message, sigmaPk, z, unownedIndex)
			if err != nil {
				return nil, fmt.Errorf("mprove: generating LSAG at index %d: %w", i, err)
			}

			gammaVec[i] = gamma
			sigmaVec[i] = sigma
		}
	}

	return &Proof{
		Message:   message,
		CVec:      stmt.CVec,
		PVec:      stmt.PVec,
		CPrimeVec: cPrimeVec,
		CRes:      curve.SumPoints(dVec),
		GammaVec:  gammaVec,
		SigmaVec:  sigmaVec,
	}, nil
}
