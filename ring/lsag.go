package ring

import (
	"crypto/rand"
	"fmt"

	"github.com/mprove-go/mprove/curve"
)

// LSAGSig is a linkable one-out-of-n ring signature. It carries a key
// image I that is a deterministic function of the signer's secret key
// and public key: two LSAGs produced with the same secret key expose
// the same I, regardless of the ring each was signed over.
type LSAGSig struct {
	SVec []curve.Scalar
	C    curve.Scalar
	I    curve.Point
}

func keyImageBase(p curve.Point) curve.Point {
	b := p.Compress()
	return curve.HashToPoint(b[:])
}

// GenLSAG signs message under pk, as the holder of the discrete log x
// of pk[signerIndex].
func GenLSAG(message curve.Point, pk []curve.Point, x curve.Scalar, signerIndex int) (*LSAGSig, error) {
	n := len(pk)
	if n < 2 {
		return nil, fmt.Errorf("ring: GenLSAG: ring size %d < 2", n)
	}
	if signerIndex < 0 || signerIndex >= n {
		return nil, fmt.Errorf("ring: GenLSAG: signer index %d out of range [0,%d)", signerIndex, n)
	}

	hSigner := keyImageBase(pk[signerIndex])
	keyImage := hSigner.ScalarMult(x)

	alpha, err := curve.RandomScalar(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("ring: GenLSAG: sampling alpha: %w", err)
	}

	sVec := make([]curve.Scalar, n)
	for i := range sVec {
		sVec[i], err = curve.RandomScalar(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("ring: GenLSAG: sampling s_vec[%d]: %w", i, err)
		}
	}

	t := newTranscript(pk, message, true)
	t.setL(curve.ScalarBaseMult(alpha))
	t.setR(hSigner.ScalarMult(alpha))
	cCur := t.challenge()

	j := (signerIndex + 1) % n
	var c curve.Scalar
	if j == 0 {
		c = cCur
	}

	for j != signerIndex {
		s, err := curve.RandomScalar(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("ring: GenLSAG: resampling s_vec[%d]: %w", j, err)
		}
		sVec[j] = s

		hj := keyImageBase(pk[j])
		l := curve.DoubleScalarMultBasepoint(s, cCur, pk[j])
		r := curve.MultiScalarMult([]curve.Scalar{s, cCur}, []curve.Point{hj, keyImage})
		t.setL(l)
		t.setR(r)
		cCur = t.challenge()

		j = (j + 1) % n
		if j == 0 {
			c = cCur
		}
	}

	sVec[signerIndex] = alpha.Sub(cCur.Mul(x))

	return &LSAGSig{SVec: sVec, C: c, I: keyImage}, nil
}

// Verify checks sig against message and pk.
func (sig *LSAGSig) Verify(message curve.Point, pk []curve.Point) error {
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
	if sig.I.IsIdentity() {
		return fmt.Errorf("%w: key image is the identity element", ErrMalformedSignature)
	}

	t := newTranscript(pk, message, true)
	cCur := sig.C
	for j := 0; j < n; j++ {
		hj := keyImageBase(pk[j])
		l := curve.DoubleScalarMultBasepoint(sig.SVec[j], cCur, pk[j])
		r := curve.MultiScalarMult([]curve.Scalar{sig.SVec[j], cCur}, []curve.Point{hj, sig.I})
		t.setL(l)
		t.setR(r)
		cCur = t.challenge()
	}

	if !cCur.Equal(sig.C) {
		return ErrLSAGVerify
	}
	return nil
}
