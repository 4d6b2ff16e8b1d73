package curve

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// cofactor is the edwards25519 cofactor; HashToPoint multiplies by it
// to clear small-subgroup components from a try-and-increment candidate.
var cofactor = ScalarFromUint64(8)

// hashWide hashes the concatenation of data with Keccak-512, returning
// all 64 bytes. Keccak-512 is the same wide hash family the reference
// implementation this package reimplements uses for both its scalar and
// point hashing, so prover and verifier transcripts agree byte-for-byte.
func hashWide(data ...[]byte) [64]byte {
	h := sha3.NewLegacyKeccak512()
	for _, d := range data {
		h.Write(d)
	}
	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}

// HashToScalar reduces a wide Keccak-512 hash of data into a scalar.
func HashToScalar(data ...[]byte) Scalar {
	wide := hashWide(data...)
	s, err := ZeroScalar().s.SetUniformBytes(wide[:])
	if err != nil {
		panic("curve: HashToScalar: SetUniformBytes on a 64-byte input cannot fail")
	}
	return Scalar{s: s}
}

// HashToPoint maps data onto the prime-order subgroup via
// try-and-increment: hash (data, counter), attempt to decode the digest
// as a compressed point, and on success multiply by the cofactor to
// discard any small-subgroup component. The counter advances until a
// valid point is found, which happens with overwhelming probability
// within a handful of attempts.
func HashToPoint(data []byte) Point {
	for counter := byte(0); ; counter++ {
		wide := hashWide(data, []byte{counter})
		candidate, err := DecompressPoint(wide[:32])
		if err != nil {
			continue
		}
		return candidate.ScalarMult(cofactor)
	}
}

// RandomPoint samples a point with no known discrete log relative to G,
// used for the MProve proof's per-proof Fiat-Shamir binding message.
func RandomPoint(rng io.Reader) (Point, error) {
	s, err := RandomScalar(rng)
	if err != nil {
		return Point{}, err
	}
	b := s.Bytes()
	return HashToPoint(b[:]), nil
}
