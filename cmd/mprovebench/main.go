// Command mprovebench drives repeated proof-of-reserves generate/verify
// cycles over a configurable ring size and owned-output count, and
// reports aggregate and average timings.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/mprove-go/mprove/bench"
)

func main() {
	ringSize := flag.Int("ring-size", 1000, "Number of commitments/addresses in the ring")
	ownedCount := flag.Int("owned-count", 100, "Number of ring indices the prover owns")
	iterations := flag.Int("iterations", 10, "Number of prove/verify cycles to run")
	verbose := flag.Bool("verbose", false, "Log per-iteration timings, not just the final summary")

	flag.Parse()

	params := bench.Params{
		RingSize:   *ringSize,
		OwnedCount: *ownedCount,
		Iterations: *iterations,
	}
	if err := params.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "mprovebench: %v\n", err)
		os.Exit(1)
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	logger.Info().
		Int("ring_size", params.RingSize).
		Int("owned_count", params.OwnedCount).
		Int("iterations", params.Iterations).
		Msg("starting mprove benchmark")

	runner := bench.NewRunner(params, logger)
	result, err := runner.Run()
	if err != nil {
		logger.Error().Err(err).Msg("benchmark run failed")
		os.Exit(1)
	}

	summary := result.Summarize()
	logger.Info().
		Int("iterations", summary.Iterations).
		Int("failures", summary.Failures).
		Dur("avg_ring_sig_gen", summary.AvgRingSigGen).
		Dur("avg_ring_sig_verify", summary.AvgRingSigVerify).
		Dur("avg_lsag_gen", summary.AvgLSAGGen).
		Dur("avg_lsag_verify", summary.AvgLSAGVerify).
		Dur("avg_prove_total", summary.AvgProveTotal).
		Dur("avg_verify_total", summary.AvgVerifyTotal).
		Msg("benchmark complete")

	if summary.Failures > 0 {
		logger.Error().Int("failures", summary.Failures).Msg("one or more proofs failed to verify")
		os.Exit(1)
	}
}
