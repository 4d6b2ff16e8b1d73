package mprove

import (
	"encoding/binary"
	"fmt"

	"github.com/mprove-go/mprove/curve"
	"github.com/mprove-go/mprove/ring"
)

// Encode serializes pf into a flat byte slice: a little-endian uint32
// ring-size prefix, followed by the three n-length point vectors
// (CVec, PVec, CPrimeVec), the message and reserve commitment points,
// and finally the per-index Gamma/Sigma signature pairs in order.
func (pf *Proof) Encode() ([]byte, error) {
	n := len(pf.PVec)
	if len(pf.CVec) != n || len(pf.CPrimeVec) != n || len(pf.GammaVec) != n || len(pf.SigmaVec) != n {
		return nil, fmt.Errorf("%w: cannot encode proof with disagreeing vector lengths", ErrMalformedInput)
	}

	buf := make([]byte, 0, 4+(3*n+2)*curve.PointSize+n*256)

	var nBytes [4]byte
	binary.LittleEndian.PutUint32(nBytes[:], uint32(n))
	buf = append(buf, nBytes[:]...)

	for _, p := range pf.CVec {
		c := p.Compress()
		buf = append(buf, c[:]...)
	}
	for _, p := range pf.PVec {
		c := p.Compress()
		buf = append(buf, c[:]...)
	}
	for _, p := range pf.CPrimeVec {
		c := p.Compress()
		buf = append(buf, c[:]...)
	}
	m := pf.Message.Compress()
	buf = append(buf, m[:]...)
	r := pf.CRes.Compress()
	buf = append(buf, r[:]...)

	for i := 0; i < n; i++ {
		buf = appendRingSig(buf, pf.GammaVec[i])
		buf = appendLSAGSig(buf, pf.SigmaVec[i])
	}

	return buf, nil
}

func appendRingSig(buf []byte, sig *ring.Sig) []byte {
	var lenBytes [4]byte
	binary.LittleEndian.PutUint32(lenBytes[:], uint32(len(sig.SVec)))
	buf = append(buf, lenBytes[:]...)
	for _, s := range sig.SVec {
		b := s.Bytes()
		buf = append(buf, b[:]...)
	}
	c := sig.C.Bytes()
	buf = append(buf, c[:]...)
	return buf
}

func appendLSAGSig(buf []byte, sig *ring.LSAGSig) []byte {
	var lenBytes [4]byte
	binary.LittleEndian.PutUint32(lenBytes[:], uint32(len(sig.SVec)))
	buf = append(buf, lenBytes[:]...)
	for _, s := range sig.SVec {
		b := s.Bytes()
		buf = append(buf, b[:]...)
	}
	c := sig.C.Bytes()
	buf = append(buf, c[:]...)
	i := sig.I.Compress()
	buf = append(buf, i[:]...)
	return buf
}

// Decode parses a byte slice produced by Encode back into a Proof. It
// does not verify the proof; callers must call Verify separately.
func Decode(data []byte) (*Proof, error) {
	r := &byteReader{data: data}

	n, err := r.uint32()
	if err != nil {
		return nil, fmt.Errorf("%w: reading ring size: %v", ErrMalformedInput, err)
	}

	cVec, err := r.points(int(n))
	if err != nil {
		return nil, fmt.Errorf("%w: reading c_vec: %v", ErrMalformedInput, err)
	}
	pVec, err := r.points(int(n))
	if err != nil {
		return nil, fmt.Errorf("%w: reading p_vec: %v", ErrMalformedInput, err)
	}
	cPrimeVec, err := r.points(int(n))
	if err != nil {
		return nil, fmt.Errorf("%w: reading c_prime_vec: %v", ErrMalformedInput, err)
	}
	message, err := r.point()
	if err != nil {
		return nil, fmt.Errorf("%w: reading message: %v", ErrMalformedInput, err)
	}
	cRes, err := r.point()
	if err != nil {
		return nil, fmt.Errorf("%w: reading c_res: %v", ErrMalformedInput, err)
	}

	gammaVec := make([]*ring.Sig, n)
	sigmaVec := make([]*ring.LSAGSig, n)
	for i := 0; i < int(n); i++ {
		gamma, err := r.ringSig()
		if err != nil {
			return nil, fmt.Errorf("%w: reading gamma_vec[%d]: %v", ErrMalformedInput, i, err)
		}
		sigma, err := r.lsagSig()
		if err != nil {
			return nil, fmt.Errorf("%w: reading sigma_vec[%d]: %v", ErrMalformedInput, i, err)
		}
		gammaVec[i] = gamma
		sigmaVec[i] = sigma
	}

	if len(r.data) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after decoding proof", ErrMalformedInput, len(r.data))
	}

	return &Proof{
		Message:   message,
		CVec:      cVec,
		PVec:      pVec,
		CPrimeVec: cPrimeVec,
		CRes:      cRes,
		GammaVec:  gammaVec,
		SigmaVec:  sigmaVec,
	}, nil
}

// byteReader walks a byte slice left to right, consuming fixed-width
// fields and erroring instead of panicking on truncated input.
type byteReader struct {
	data []byte
}

func (r *byteReader) take(n int) ([]byte, error) {
	if len(r.data) < n {
		return nil, fmt.Errorf("need %d bytes, have %d", n, len(r.data))
	}
	out := r.data[:n]
	r.data = r.data[n:]
	return out, nil
}

func (r *byteReader) uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *byteReader) point() (curve.Point, error) {
	b, err := r.take(curve.PointSize)
	if err != nil {
		return curve.Point{}, err
	}
	return curve.DecompressPoint(b)
}

func (r *byteReader) scalar() (curve.Scalar, error) {
	b, err := r.take(32)
	if err != nil {
		return curve.Scalar{}, err
	}
	return curve.ScalarFromCanonicalBytes(b)
}

func (r *byteReader) points(n int) ([]curve.Point, error) {
	out := make([]curve.Point, n)
	for i := range out {
		p, err := r.point()
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

func (r *byteReader) ringSig() (*ring.Sig, error) {
	n, err := r.uint32()
	if err != nil {
		return nil, err
	}
	sVec := make([]curve.Scalar, n)
	for i := range sVec {
		s, err := r.scalar()
		if err != nil {
			return nil, fmt.Errorf("s_vec[%d]: %w", i, err)
		}
		sVec[i] = s
	}
	c, err := r.scalar()
	if err != nil {
		return nil, fmt.Errorf("c: %w", err)
	}
	return &ring.Sig{SVec: sVec, C: c}, nil
}

func (r *byteReader) lsagSig() (*ring.LSAGSig, error) {
	n, err := r.uint32()
	if err != nil {
		return nil, err
	}
	sVec := make([]curve.Scalar, n)
	for i := range sVec {
		s, err := r.scalar()
		if err != nil {
			return nil, fmt.Errorf("s_vec[%d]: %w", i, err)
		}
		sVec[i] = s
	}
	c, err := r.scalar()
	if err != nil {
		return nil, fmt.Errorf("c: %w", err)
	}
	img, err := r.point()
	if err != nil {
		return nil, fmt.Errorf("key image: %w", err)
	}
	return &ring.LSAGSig{SVec: sVec, C: c, I: img}, nil
}
