package curve

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarArithmetic(t *testing.T) {
	a, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	b, err := RandomScalar(rand.Reader)
	require.NoError(t, err)

	require.True(t, a.Add(b).Sub(b).Equal(a))
	require.True(t, a.Mul(OneScalar()).Equal(a))
	require.True(t, ZeroScalar().IsZero())
	require.False(t, a.IsZero(), "a random 64-byte scalar collided with zero")
}

func TestPointArithmeticAndCompression(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	require.NoError(t, err)

	p := ScalarBaseMult(s)
	q := Basepoint().ScalarMult(s)
	require.True(t, p.Equal(q))

	encoded := p.Compress()
	decoded, err := DecompressPoint(encoded[:])
	require.NoError(t, err)
	require.True(t, p.Equal(decoded))

	require.True(t, p.Add(q.Neg()).IsIdentity())
}

func TestDoubleScalarMultBasepoint(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	c, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	p := HashToPoint([]byte("some public key"))

	got := DoubleScalarMultBasepoint(s, c, p)
	want := ScalarBaseMult(s).Add(p.ScalarMult(c))
	require.True(t, got.Equal(want))
}

func TestMultiScalarMultAndSum(t *testing.T) {
	points := []Point{
		HashToPoint([]byte("a")),
		HashToPoint([]byte("b")),
		HashToPoint([]byte("c")),
	}
	sum := SumPoints(points)
	want := points[0].Add(points[1]).Add(points[2])
	require.True(t, sum.Equal(want))
}

func TestHashToScalarDeterministic(t *testing.T) {
	a := HashToScalar([]byte("hello"), []byte("world"))
	b := HashToScalar([]byte("hello"), []byte("world"))
	require.True(t, a.Equal(b))

	c := HashToScalar([]byte("hello"), []byte("worlds"))
	require.False(t, a.Equal(c))
}

func TestHashToPointDeterministicAndInSubgroup(t *testing.T) {
	a := HashToPoint([]byte("key material"))
	b := HashToPoint([]byte("key material"))
	require.True(t, a.Equal(b))
	require.False(t, a.IsIdentity())
	// (l-1)*a + a = l*a, which is the identity exactly when a has no
	// small-order component.
	require.True(t, a.ScalarMult(OneScalar().Neg()).Add(a).IsIdentity())
}

func TestHashToPointDifferentInputsDiffer(t *testing.T) {
	a := HashToPoint([]byte("alpha"))
	b := HashToPoint([]byte("beta"))
	require.False(t, a.Equal(b))
}
