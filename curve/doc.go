// Package curve wraps the edwards25519 group in the opaque Point/Scalar
// primitives the ring-signature and MProve packages build on: addition,
// subtraction, scalar multiplication, variable-time multiscalar and
// double-scalar-with-basepoint multiplication, canonical 32-byte
// compressed encoding, and hashing into either the scalar field or the
// group itself.
//
// The scalar hash (HashToScalar) and point hash (HashToPoint) both use
// Keccak-512 as their wide hash function, matching the reference
// implementation this package reimplements. HashToPoint uses
// try-and-increment: it hashes successive candidates until one decodes
// to a curve point, then clears the cofactor by multiplying by 8 so the
// result lands in the prime-order subgroup every other operation here
// assumes.
package curve
