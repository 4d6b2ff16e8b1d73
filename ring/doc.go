// Package ring implements the two one-out-of-two ring signature
// schemes the MProve orchestrator builds on: a basic Schnorr-style
// (AOS-like) ring signature and its linkable variant, LSAG. Both share
// a Fiat-Shamir challenge-chain structure over a fixed transcript
// buffer; LSAG additionally carries a key image that lets external
// code detect reuse of the same secret key across signatures.
package ring
