package bench

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/mprove-go/mprove/curve"
	"github.com/mprove-go/mprove/mprove"
)

// Params configures a benchmark run: a ring of RingSize commitments and
// addresses, OwnedCount of which belong to the prover, repeated
// Iterations times.
type Params struct {
	RingSize   int
	OwnedCount int
	Iterations int
}

// Validate rejects configurations that cannot produce a meaningful
// proof: a non-positive ring size, an owned count outside [0,
// RingSize], or a non-positive iteration count.
func (p Params) Validate() error {
	if p.RingSize < 1 {
		return fmt.Errorf("bench: ring size %d must be positive", p.RingSize)
	}
	if p.OwnedCount < 0 || p.OwnedCount > p.RingSize {
		return fmt.Errorf("bench: owned count %d out of range [0,%d]", p.OwnedCount, p.RingSize)
	}
	if p.Iterations < 1 {
		return fmt.Errorf("bench: iterations %d must be positive", p.Iterations)
	}
	return nil
}

// ownedIndices spreads p.OwnedCount owned indices across p.RingSize
// ring slots by splitting the ring into OwnedCount contiguous windows
// and sampling one index uniformly from each window. This mirrors the
// reference benchmark's index generator, which avoids clustering all
// owned outputs at the front of the ring the way a plain prefix or a
// fully uniform sample over the whole ring can.
func ownedIndices(ringSize, ownedCount int) ([]int, error) {
	if ownedCount == 0 {
		return nil, nil
	}
	windowSize := ringSize / ownedCount
	indices := make([]int, ownedCount)
	for w := 0; w < ownedCount; w++ {
		start := w * windowSize
		size := windowSize
		if w == ownedCount-1 {
			size = ringSize - start
		}
		offset, err := rand.Int(rand.Reader, big.NewInt(int64(size)))
		if err != nil {
			return nil, fmt.Errorf("bench: sampling window %d offset: %w", w, err)
		}
		indices[w] = start + int(offset.Int64())
	}
	return indices, nil
}

// GenParams fabricates a Statement and matching Witness for a ring of
// p.RingSize commitments and addresses with p.OwnedCount owned
// indices spread across the ring.
func GenParams(p Params) (mprove.Statement, mprove.Witness, error) {
	if err := p.Validate(); err != nil {
		return mprove.Statement{}, mprove.Witness{}, err
	}

	owned, err := ownedIndices(p.RingSize, p.OwnedCount)
	if err != nil {
		return mprove.Statement{}, mprove.Witness{}, err
	}
	ownedSet := make(map[int]bool, len(owned))
	for _, i := range owned {
		ownedSet[i] = true
	}

	cVec := make([]curve.Point, p.RingSize)
	pVec := make([]curve.Point, p.RingSize)
	eVec := make([]bool, p.RingSize)
	xVec := make([]curve.Scalar, 0, p.OwnedCount)

	for i := 0; i < p.RingSize; i++ {
		amount, err := curve.RandomScalar(rand.Reader)
		if err != nil {
			return mprove.Statement{}, mprove.Witness{}, fmt.Errorf("bench: sampling commitment %d: %w", i, err)
		}
		cVec[i] = curve.ScalarBaseMult(amount)

		if ownedSet[i] {
			x, err := curve.RandomScalar(rand.Reader)
			if err != nil {
				return mprove.Statement{}, mprove.Witness{}, fmt.Errorf("bench: sampling secret key %d: %w", i, err)
			}
			pVec[i] = curve.ScalarBaseMult(x)
			eVec[i] = true
			xVec = append(xVec, x)
			continue
		}

		decoyPk, err := curve.RandomPoint(rand.Reader)
		if err != nil {
			return mprove.Statement{}, mprove.Witness{}, fmt.Errorf("bench: sampling decoy address %d: %w", i, err)
		}
		pVec[i] = decoyPk
	}

	stmt := mprove.Statement{CVec: cVec, PVec: pVec}
	wit := mprove.Witness{XVec: xVec, EVec: eVec}
	return stmt, wit, nil
}
