package ring

import (
	"crypto/rand"
	"fmt"

	"github.com/mprove-go/mprove/curve"
)

// Sig is a basic one-out-of-n Schnorr-style ring signature: it proves
// knowledge of the discrete log of one of pk's n entries without
// revealing which one.
type Sig struct {
	SVec []curve.Scalar
	C    curve.Scalar
}

// GenRingSig signs message under pk, as the holder of the discrete log
// x of pk[signerIndex] (i.e. pk[signerIndex] == x*G).
func GenRingSig(message curve.Point, pk []curve.Point, x curve.Scalar, signerIndex int) (*Sig, error) {
	n := len(pk)
	if n < 2 {
		return nil, fmt.Errorf("ring: GenRingSig: ring size %d < 2", n)
	}
	if signerIndex < 0 || signerIndex >= n {
		return nil, fmt.Errorf("ring: GenRingSig: signer index %d out of range [0,%d)", signerIndex, n)
	}

	alpha, err := curve.RandomScalar(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("ring: GenRingSig: sampling alpha: %w", err)
	}

	sVec := make([]curve.Scalar, n)
	for i := range sVec {
		sVec[i], err = curve.RandomScalar(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("ring: GenRingSig: sampling s_vec[%d]: %w", i, err)
		}
	}

	t := newTranscript(pk, message, false)
	t.setL(curve.ScalarBaseMult(alpha))
	cCur := t.challenge()

	j := (signerIndex + 1) % n
	var c curve.Scalar
	if j == 0 {
		c = cCur
	}

	for j != signerIndex {
		s, err := curve.RandomScalar(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("ring: GenRingSig: resampling s_vec[%d]: %w", j, err)
		}
		sVec[j] = s

		l := curve.DoubleScalarMultBasepoint(s, cCur, pk[j])
		t.setL(l)
		cCur = t.challenge()

		j = (j + 1) % n
		if j == 0 {
			c = cCur
		}
	}

	sVec[signerIndex] = alpha.Sub(cCur.Mul(x))

	return &Sig{SVec: sVec, C: c}, nil
}

// Verify checks sig against message and pk. It never panics: malformed
// signatures and closed-but-wrong challenge chains are both reported as
// errors.
func (sig *Sig) Verify(message curve.Point, pk []curve.Point) error {
	n := len(pk)
	if n < 2 {
		return fmt.Errorf("%w: ring size %d < 2", ErrMalformedSignature, n)
	}
	if len(sig.SVec) != n {
		return fmt.Errorf("%w: s_vec has length %d, want %d", ErrMalformedSignature, len(sig.SVec), n)
	}
	for i, s := range sig.SVec {
		if s.IsZero() {
			return fmt.Errorf("%w: s_vec[%d] is zero", ErrMalformedSignature, i)
		}
	}
	if sig.C.IsZero() {
		return fmt.Errorf("%w: c is zero", ErrMalformedSignature)
	}

	t := newTranscript(pk, message, false)
	cCur := sig.C
	for j := 0; j < n; j++ {
		l := curve.DoubleScalarMultBasepoint(sig.SVec[j], cCur, pk[j])
		t.setL(l)
		cCur = t.challenge()
	}

	if !cCur.Equal(sig.C) {
		return ErrRingSigVerify
	}
	return nil
}
