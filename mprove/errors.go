package mprove

import "errors"

var (
	// ErrMalformedInput is returned when Prove's input vectors disagree
	// in length, or the witness scalar count doesn't match the number
	// of owned indices flagged in EVec.
	ErrMalformedInput = errors.New("mprove: malformed input")

	// ErrSigVerification is returned when a per-index ring or linkable
	// signature fails to verify.
	ErrSigVerification = errors.New("mprove: sub-signature verification failed")

	// ErrReserveMismatch is returned when the aggregated reserve
	// commitment carried in a proof does not match the sum of the
	// per-index difference points recomputed during verification.
	ErrReserveMismatch = errors.New("mprove: aggregated reserve commitment mismatch")
)
