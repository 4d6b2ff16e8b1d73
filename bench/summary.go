package bench

import "time"

// Summary is the averaged view of a Result, the form reported on the
// command line and logged at the end of a run.
type Summary struct {
	Iterations       int
	Failures         int
	AvgRingSigGen    time.Duration
	AvgRingSigVerify time.Duration
	AvgLSAGGen       time.Duration
	AvgLSAGVerify    time.Duration
	AvgProveTotal    time.Duration
	AvgVerifyTotal   time.Duration
}

// Summarize averages every phase across r.Timings. It returns the zero
// Summary if r has no timings recorded.
func (r Result) Summarize() Summary {
	n := len(r.Timings)
	s := Summary{Iterations: n, Failures: r.Failures}
	if n == 0 {
		return s
	}

	var ringGen, ringVerify, lsagGen, lsagVerify, proveTotal, verifyTotal time.Duration
	for _, t := range r.Timings {
		ringGen += t.RingSigGen
		ringVerify += t.RingSigVerify
		lsagGen += t.LSAGGen
		lsagVerify += t.LSAGVerify
		proveTotal += t.ProveTotal
		verifyTotal += t.VerifyTotal
	}

	s.AvgRingSigGen = ringGen / time.Duration(n)
	s.AvgRingSigVerify = ringVerify / time.Duration(n)
	s.AvgLSAGGen = lsagGen / time.Duration(n)
	s.AvgLSAGVerify = lsagVerify / time.Duration(n)
	s.AvgProveTotal = proveTotal / time.Duration(n)
	s.AvgVerifyTotal = verifyTotal / time.Duration(n)
	return s
}
