package cert

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Operation is a timed unit of work. It must be safe for concurrent use
// when MeasureConfig.Workers > 1.
type Operation func(ctx context.Context) error

// Timing holds the raw observations behind a Measure call.
type Timing struct {
	Workers   int             // Concurrent callers
	Elapsed   time.Duration   // Wall time of the measurement phase
	Latencies []time.Duration // One entry per successful call
	Errors    int64           // Failed calls, excluded from Latencies
}

// MeasureConfig controls Measure.
type MeasureConfig struct {
	Duration time.Duration // Measurement phase length
	Warmup   time.Duration // Discarded run before measuring
	Workers  int           // Concurrent callers

	// Report the standard error of the mean latency instead of the
	// spread of individual calls.
	StandardError bool
}

// DefaultMeasureConfig returns a one-second single-worker measurement.
func DefaultMeasureConfig() MeasureConfig {
	return MeasureConfig{
		Duration: 1 * time.Second,
		Warmup:   100 * time.Millisecond,
		Workers:  1,
	}
}

// Validate checks the config.
func (c MeasureConfig) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidConfig, c.Duration)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("%w: warmup must not be negative, got %v", ErrInvalidConfig, c.Warmup)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// Measure calls op repeatedly and reports its latency in seconds as a
// measured value: the sample mean with the sample standard deviation, or
// the standard error with cfg.StandardError.
//
// Failed calls are counted in Timing.Errors and left out of the estimate.
// If none succeed the error wraps ErrEmptySample.
func Measure(ctx context.Context, op Operation, cfg MeasureConfig) (AbsUncertainty[float64], Timing, error) {
	if err := cfg.Validate(); err != nil {
		return AbsUncertainty[float64]{}, Timing{}, err
	}
	if err := ctx.Err(); err != nil {
		return AbsUncertainty[float64]{}, Timing{}, err
	}

	if cfg.Warmup > 0 {
		warmupCtx, cancel := context.WithTimeout(ctx, cfg.Warmup)
		_ = runPhase(warmupCtx, op, cfg.Workers)
		cancel()
	}

	measureCtx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()
	timing := runPhase(measureCtx, op, cfg.Workers)

	seconds := make([]float64, len(timing.Latencies))
	for i, d := range timing.Latencies {
		seconds[i] = d.Seconds()
	}

	estimate := FromSamples
	if cfg.StandardError {
		estimate = StandardErrorOf
	}
	latency, err := estimate(seconds)
	if err != nil {
		return AbsUncertainty[float64]{}, timing, fmt.Errorf("no successful operations (%d failed): %w", timing.Errors, err)
	}
	return latency, timing, nil
}

// Throughput converts a per-call latency in seconds into operations per
// second across workers concurrent callers.
func Throughput(latency AbsUncertainty[float64], workers int) AbsUncertainty[float64] {
	return latency.Powi(-1).Mul(Exact(workers))
}

// runPhase runs op on n workers until ctx is done.
func runPhase(ctx context.Context, op Operation, n int) Timing {
	var (
		wg        sync.WaitGroup
		errors    int64
		latencies = make([][]time.Duration, n) // Per-worker latency slices
	)

	start := time.Now()

	for i := 0; i < n; i++ {
		wg.Add(1)
		workerID := i
		latencies[workerID] = make([]time.Duration, 0, 1000)

		go func() {
			defer wg.Done()

			for ctx.Err() == nil {
				opStart := time.Now()
				err := op(ctx)
				opDuration := time.Since(opStart)

				if err != nil {
					atomic.AddInt64(&errors, 1)
					continue
				}
				latencies[workerID] = append(latencies[workerID], opDuration)
			}
		}()
	}

	wg.Wait()

	var total int
	for _, l := range latencies {
		total += len(l)
	}
	all := make([]time.Duration, 0, total)
	for _, l := range latencies {
		all = append(all, l...)
	}

	return Timing{
		Workers:   n,
		Elapsed:   time.Since(start),
		Latencies: all,
		Errors:    errors,
	}
}
