package cert

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// ToleranceConfig contains the thresholds used by the assertion helpers.
type ToleranceConfig struct {
	// Absolute tolerance, used near zero
	AbsTol float64

	// Relative tolerance, used everywhere else
	RelTol float64
}

// DefaultToleranceConfig returns tolerances suited to float64 round trips.
func DefaultToleranceConfig() ToleranceConfig {
	return ToleranceConfig{
		AbsTol: 1e-12,
		RelTol: 1e-9,
	}
}

// Float32ToleranceConfig returns tolerances suited to float32 arithmetic.
func Float32ToleranceConfig() ToleranceConfig {
	return ToleranceConfig{
		AbsTol: 1e-6,
		RelTol: 1e-5,
	}
}

// Close reports whether got and want agree within cfg. Two NaNs are close, as
// are two infinities of the same sign.
func Close(got, want float64, cfg ToleranceConfig) bool {
	switch {
	case math.IsNaN(got) || math.IsNaN(want):
		return math.IsNaN(got) && math.IsNaN(want)
	case math.IsInf(got, 0) || math.IsInf(want, 0):
		return got == want
	}
	return scalar.EqualWithinAbsOrRel(got, want, cfg.AbsTol, cfg.RelTol)
}

// AssertClose fails the test if got and want are not Close.
func AssertClose(t testing.TB, name string, got, want float64, cfg ToleranceConfig) {
	t.Helper()

	if !Close(got, want, cfg) {
		t.Errorf("%s: got %.12g, want %.12g (abs tol %g, rel tol %g)",
			name, got, want, cfg.AbsTol, cfg.RelTol)
	}
}

// AssertUncertaintyClose verifies both the mean and the standard deviation of got.
//
// Standard deviation is compared rather than the native uncertainty, so the
// helper works the same for absolute and relative values.
func AssertUncertaintyClose[F Float](t testing.TB, got Uncertainty[F], wantMean, wantSD F, cfg ToleranceConfig) {
	t.Helper()

	AssertClose(t, "mean", float64(got.Mean()), float64(wantMean), cfg)
	AssertClose(t, "standard deviation", float64(got.StandardDeviation()), float64(wantSD), cfg)
}

// AssertRoundTrip verifies that converting u absolute → relative → absolute
// and relative → absolute → relative reproduces its mean, standard deviation
// and coefficient of variation.
//
// The law holds for every finite, non-zero mean.
func AssertRoundTrip[F Float](t testing.TB, u Uncertainty[F], cfg ToleranceConfig) {
	t.Helper()

	viaRel := u.Absolute().Relative().Absolute()
	AssertClose(t, "abs→rel→abs mean", float64(viaRel.Mean()), float64(u.Mean()), cfg)
	AssertClose(t, "abs→rel→abs standard deviation",
		float64(viaRel.StandardDeviation()), float64(u.StandardDeviation()), cfg)

	viaAbs := u.Relative().Absolute().Relative()
	AssertClose(t, "rel→abs→rel mean", float64(viaAbs.Mean()), float64(u.Mean()), cfg)
	AssertClose(t, "rel→abs→rel coefficient of variation",
		float64(viaAbs.CoefficientOfVariation()), float64(u.CoefficientOfVariation()), cfg)
}
