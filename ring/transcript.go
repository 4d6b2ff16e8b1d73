package ring

import "github.com/mprove-go/mprove/curve"

// transcript holds the Fiat-Shamir hash input buffer described in
// spec §4.1: the ring's public keys and the bound message occupy fixed
// prefix slots, and only the trailing L (and, for LSAG, R) slot is
// overwritten as the challenge chain advances. Rebuilding the full
// buffer on every round would produce byte-identical input; keeping it
// around and overwriting the tail is simply the cheaper way to do that.
type transcript struct {
	buf  []byte
	lOff int
	rOff int // -1 when the transcript carries no R slot (basic ring signature)
}

func newTranscript(pk []curve.Point, message curve.Point, withR bool) *transcript {
	n := len(pk)
	extraSlots := 2
	if withR {
		extraSlots = 3
	}
	buf := make([]byte, (n+extraSlots)*curve.PointSize)
	for i, p := range pk {
		c := p.Compress()
		copy(buf[i*curve.PointSize:], c[:])
	}
	m := message.Compress()
	copy(buf[n*curve.PointSize:], m[:])

	t := &transcript{
		buf:  buf,
		lOff: (n + 1) * curve.PointSize,
		rOff: -1,
	}
	if withR {
		t.rOff = (n + 2) * curve.PointSize
	}
	return t
}

func (t *transcript) setL(l curve.Point) {
	c := l.Compress()
	copy(t.buf[t.lOff:], c[:])
}

func (t *transcript) setR(r curve.Point) {
	c := r.Compress()
	copy(t.buf[t.rOff:], c[:])
}

func (t *transcript) challenge() curve.Scalar {
	return curve.HashToScalar(t.buf)
}
