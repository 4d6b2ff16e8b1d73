package curve

import (
	"crypto/rand"
	"fmt"
	"io"

	"filippo.io/edwards25519"
)

// PointSize is the length in bytes of a canonical compressed point
// encoding. Fiat-Shamir transcript offsets throughout the ring and
// mprove packages are expressed in multiples of this constant rather
// than a hardcoded 32, so the transcript layout generalizes to whatever
// curve backs Point.
const PointSize = 32

// Scalar is an integer modulo the group order l of edwards25519.
type Scalar struct {
	s *edwards25519.Scalar
}

// Point is a group element of the prime-order subgroup of edwards25519.
type Point struct {
	p *edwards25519.Point
}

// ZeroScalar returns the additive identity.
func ZeroScalar() Scalar {
	return Scalar{s: edwards25519.NewScalar()}
}

// OneScalar returns the multiplicative identity.
func OneScalar() Scalar {
	one := make([]byte, 32)
	one[0] = 1
	s, err := edwards25519.NewScalar().SetCanonicalBytes(one)
	if err != nil {
		panic(fmt.Sprintf("curve: building one scalar: %v", err))
	}
	return Scalar{s: s}
}

// RandomScalar samples a scalar uniformly at random using rng.
func RandomScalar(rng io.Reader) (Scalar, error) {
	if rng == nil {
		rng = rand.Reader
	}
	var buf [64]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return Scalar{}, fmt.Errorf("curve: reading randomness: %w", err)
	}
	s, err := edwards25519.NewScalar().SetUniformBytes(buf[:])
	if err != nil {
		return Scalar{}, fmt.Errorf("curve: reducing random scalar: %w", err)
	}
	return Scalar{s: s}, nil
}

// Add returns a + b.
func (a Scalar) Add(b Scalar) Scalar {
	return Scalar{s: edwards25519.NewScalar().Add(a.s, b.s)}
}

// Sub returns a - b.
func (a Scalar) Sub(b Scalar) Scalar {
	return Scalar{s: edwards25519.NewScalar().Subtract(a.s, b.s)}
}

// Mul returns a * b.
func (a Scalar) Mul(b Scalar) Scalar {
	return Scalar{s: edwards25519.NewScalar().Multiply(a.s, b.s)}
}

// Neg returns -a.
func (a Scalar) Neg() Scalar {
	return Scalar{s: edwards25519.NewScalar().Negate(a.s)}
}

// Equal reports whether a and b represent the same scalar.
func (a Scalar) Equal(b Scalar) bool {
	return a.s.Equal(b.s) == 1
}

// IsZero reports whether a is the additive identity.
func (a Scalar) IsZero() bool {
	return a.Equal(ZeroScalar())
}

// Bytes returns the canonical little-endian encoding of a.
func (a Scalar) Bytes() [32]byte {
	var out [32]byte
	copy(out[:], a.s.Bytes())
	return out
}

// ScalarFromCanonicalBytes parses the 32-byte little-endian canonical
// encoding produced by Scalar.Bytes.
func ScalarFromCanonicalBytes(data []byte) (Scalar, error) {
	s, err := edwards25519.NewScalar().SetCanonicalBytes(data)
	if err != nil {
		return Scalar{}, fmt.Errorf("curve: decoding scalar: %w", err)
	}
	return Scalar{s: s}, nil
}

// ScalarFromUint64 builds a small scalar from a plain integer, used for
// cofactor clearing and similar fixed constants.
func ScalarFromUint64(v uint64) Scalar {
	var buf [32]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(buf[:])
	if err != nil {
		panic(fmt.Sprintf("curve: building scalar from uint64: %v", err))
	}
	return Scalar{s: s}
}

// Basepoint returns the fixed, publicly known generator G.
func Basepoint() Point {
	return Point{p: edwards25519.NewGeneratorPoint()}
}

// IdentityPoint returns the group identity element.
func IdentityPoint() Point {
	return Point{p: edwards25519.NewIdentityPoint()}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p: edwards25519.NewIdentityPoint().Add(p.p, q.p)}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p: edwards25519.NewIdentityPoint().Subtract(p.p, q.p)}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{p: edwards25519.NewIdentityPoint().Negate(p.p)}
}

// ScalarMult returns s*p.
func (p Point) ScalarMult(s Scalar) Point {
	return Point{p: edwards25519.NewIdentityPoint().ScalarMult(s.s, p.p)}
}

// ScalarBaseMult returns s*G.
func ScalarBaseMult(s Scalar) Point {
	return Point{p: edwards25519.NewIdentityPoint().ScalarBaseMult(s.s)}
}

// Equal reports whether p and q represent the same point.
func (p Point) Equal(q Point) bool {
	return p.p.Equal(q.p) == 1
}

// IsIdentity reports whether p is the group identity.
func (p Point) IsIdentity() bool {
	return p.Equal(IdentityPoint())
}

// Compress returns the canonical 32-byte encoding of p.
func (p Point) Compress() [32]byte {
	var out [32]byte
	copy(out[:], p.p.Bytes())
	return out
}

// DecompressPoint parses a canonical compressed point encoding.
func DecompressPoint(data []byte) (Point, error) {
	pt, err := edwards25519.NewIdentityPoint().SetBytes(data)
	if err != nil {
		return Point{}, fmt.Errorf("curve: decompressing point: %w", err)
	}
	return Point{p: pt}, nil
}

// MultiScalarMult computes the variable-time multiscalar multiplication
// sum_i scalars[i]*points[i]. Every operand here is public at the time
// it is evaluated (published ring elements, blinding factors that
// appear in the final proof), so constant time is not required.
func MultiScalarMult(scalars []Scalar, points []Point) Point {
	if len(scalars) != len(points) {
		panic("curve: MultiScalarMult: mismatched lengths")
	}
	es := make([]*edwards25519.Scalar, len(scalars))
	ep := make([]*edwards25519.Point, len(points))
	for i := range scalars {
		es[i] = scalars[i].s
		ep[i] = points[i].p
	}
	return Point{p: edwards25519.NewIdentityPoint().VarTimeMultiScalarMult(es, ep)}
}

// DoubleScalarMultBasepoint computes s*G + c*p in variable time, the
// combined operation the ring-signature round function needs at every
// step of its challenge chain.
func DoubleScalarMultBasepoint(s Scalar, c Scalar, p Point) Point {
	return Point{p: edwards25519.NewIdentityPoint().VarTimeDoubleScalarBaseMult(c.s, p.p, s.s)}
}

// SumPoints adds points with an all-ones coefficient vector, used to
// aggregate per-index difference points into the reserve commitment.
func SumPoints(points []Point) Point {
	ones := make([]Scalar, len(points))
	for i := range ones {
		ones[i] = OneScalar()
	}
	return MultiScalarMult(ones, points)
}
