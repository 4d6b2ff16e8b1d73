package mprove

import (
	"github.com/mprove-go/mprove/curve"
	"github.com/mprove-go/mprove/ring"
)

// Statement is the public data a proof is checked against: the
// exchange's n published commitments and the one-time addresses they
// were sent to.
type Statement struct {
	CVec []curve.Point
	PVec []curve.Point
}

// Witness is the prover's private knowledge of a Statement: for every
// index flagged owned in EVec, the corresponding secret key in XVec
// (in the same relative order as the true indices in EVec).
type Witness struct {
	XVec []curve.Scalar
	EVec []bool
}

// Proof is a complete MProve proof of reserves.
type Proof struct {
	Message   curve.Point
	CVec      []curve.Point
	PVec      []curve.Point
	CPrimeVec []curve.Point
	CRes      curve.Point
	GammaVec  []*ring.Sig
	SigmaVec  []*ring.LSAGSig
}
