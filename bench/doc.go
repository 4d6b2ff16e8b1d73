// Package bench builds random MProve statements and witnesses for
// benchmarking and manual exercise of the proof system, and times the
// prove/verify cycle at both the signature-primitive and
// full-proof granularity.
package bench
