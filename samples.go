package cert

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FromSamples estimates a quantity from repeated measurements: the sample mean
// with the unbiased sample standard deviation.
//
// A single sample yields a certain value (standard deviation 0).
//
// Example:
//
//	g, err := cert.FromSamples([]float64{9.79, 9.82, 9.81, 9.80})
//	// g ≈ 9.805 ± 0.013
func FromSamples(xs []float64) (AbsUncertainty[float64], error) {
	switch len(xs) {
	case 0:
		return AbsUncertainty[float64]{}, ErrEmptySample
	case 1:
		return NewAbs(xs[0], 0), nil
	}

	mean, std := stat.MeanStdDev(xs, nil)
	return NewAbs(mean, std), nil
}

// StandardErrorOf estimates the mean of repeated measurements with the
// standard error of the mean (σ/√n) as its uncertainty. Use it when the mean
// itself, not a single draw, is the quantity of interest.
func StandardErrorOf(xs []float64) (AbsUncertainty[float64], error) {
	switch len(xs) {
	case 0:
		return AbsUncertainty[float64]{}, ErrEmptySample
	case 1:
		return NewAbs(xs[0], 0), nil
	}

	mean, std := stat.MeanStdDev(xs, nil)
	return NewAbs(mean, stat.StdErr(std, float64(len(xs)))), nil
}

// WeightedFromSamples is FromSamples with per-sample weights.
func WeightedFromSamples(xs, weights []float64) (AbsUncertainty[float64], error) {
	if len(xs) != len(weights) {
		return AbsUncertainty[float64]{}, fmt.Errorf("%w: %d samples, %d weights",
			ErrLengthMismatch, len(xs), len(weights))
	}
	switch len(xs) {
	case 0:
		return AbsUncertainty[float64]{}, ErrEmptySample
	case 1:
		return NewAbs(xs[0], 0), nil
	}

	mean, std := stat.MeanStdDev(xs, weights)
	return NewAbs(mean, std), nil
}

// Combine merges independent measurements of the same quantity by
// inverse-variance weighting:
//
//	mean = Σ(xᵢ/σᵢ²) / Σ(1/σᵢ²),  σ = 1/√Σ(1/σᵢ²)
//
// Certain inputs have infinite weight. If any are present the result is their
// plain mean with zero uncertainty and the uncertain inputs are ignored.
func Combine(values ...Uncertainty[float64]) (AbsUncertainty[float64], error) {
	if len(values) == 0 {
		return AbsUncertainty[float64]{}, ErrEmptySample
	}

	var exact []float64
	means := make([]float64, 0, len(values))
	weights := make([]float64, 0, len(values))
	for _, v := range values {
		sd := v.StandardDeviation()
		if sd == 0 {
			exact = append(exact, v.Mean())
			continue
		}
		means = append(means, v.Mean())
		weights = append(weights, 1/(sd*sd))
	}

	if len(exact) > 0 {
		return NewAbs(stat.Mean(exact, nil), 0), nil
	}

	return NewAbs(stat.Mean(means, weights), 1/math.Sqrt(floats.Sum(weights))), nil
}
