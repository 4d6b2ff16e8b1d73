// Package mprove implements the MProve non-interactive proof of
// reserves: given an exchange's list of published output commitments
// and one-time addresses, a prover who controls a subset of those
// outputs demonstrates that the total of their hidden amounts meets or
// backs a claimed reserve, without revealing which outputs are theirs.
//
// A proof pairs, for every ring index, a basic ring signature over a
// commitment-difference statement with a linkable ring signature over
// the corresponding one-time address. The per-index difference points
// sum to the aggregated reserve commitment carried in the proof.
package mprove
