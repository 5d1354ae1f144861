package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexshd/cert"
	"github.com/alexshd/cert/internal/rpn"
)

// BenchOptions holds flags for the bench command.
type BenchOptions struct {
	Duration time.Duration
	Workers  int
	SEM      bool
}

// NewBenchCommand creates the bench command.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BenchOptions{}

	cmd := &cobra.Command{
		Use:   "bench tokens...",
		Short: "Time the evaluation of an expression",
		Long: `Evaluate an expression repeatedly and report the per-call latency in
microseconds and the throughput in evaluations per second, each with its
measured uncertainty.`,
		Example: "  cert bench --duration 2s 10±1 5±2 / ^2",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(rootOpts, opts, args, cmd)
		},
	}

	defaults := cert.DefaultMeasureConfig()
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().DurationVar(&opts.Duration, "duration", defaults.Duration, "measurement time")
	cmd.Flags().IntVar(&opts.Workers, "workers", defaults.Workers, "concurrent evaluators")
	cmd.Flags().BoolVar(&opts.SEM, "sem", false, "report the standard error of the mean latency")

	return cmd
}

func runBench(rootOpts *RootOptions, opts *BenchOptions, args []string, cmd *cobra.Command) error {
	tokens := normalizeArgs(args)
	evaluator := rpn.New()

	// Reject bad expressions before timing them
	if _, err := evaluator.Evaluate(tokens); err != nil {
		return inputError(err)
	}

	cfg := cert.DefaultMeasureConfig()
	cfg.Duration = opts.Duration
	cfg.Workers = opts.Workers
	cfg.StandardError = opts.SEM
	if cfg.Warmup > cfg.Duration {
		cfg.Warmup = cfg.Duration / 10
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid options", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	latency, timing, err := cert.Measure(ctx, func(context.Context) error {
		_, err := evaluator.Evaluate(tokens)
		return err
	}, cfg)
	if err != nil {
		return WrapExitError(ExitFailure, "measurement failed", err)
	}
	rootOpts.Logger.Debug("measured", "calls", len(timing.Latencies), "errors", timing.Errors, "elapsed", timing.Elapsed)

	return rootOpts.formatter(cmd).Results(
		NewResult("latency_us", latency.Mul(cert.Exact(1e6))),
		NewResult("throughput", cert.Throughput(latency, cfg.Workers)),
	)
}
