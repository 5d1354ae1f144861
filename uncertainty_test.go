package cert

import (
	"math"
	"math/rand"
	"testing"
)

// TestNewAbs_NormalizesSign verifies the stored standard deviation is never negative.
func TestNewAbs_NormalizesSign(t *testing.T) {
	for _, u := range []float64{0, 0.5, 1, 3.25, 1e9} {
		pos := NewAbs(10.0, u)
		neg := NewAbs(10.0, -u)

		if pos.Uncertainty() != neg.Uncertainty() {
			t.Errorf("NewAbs(10, ±%g): uncertainties differ: %g vs %g", u, pos.Uncertainty(), neg.Uncertainty())
		}
		if neg.StandardDeviation() < 0 {
			t.Errorf("NewAbs(10, -%g): negative standard deviation %g", u, neg.StandardDeviation())
		}
	}
	t.Logf("✓ NewAbs discards the sign of the uncertainty")
}

// TestNewRel_NormalizesSign verifies the stored coefficient of variation is never negative.
func TestNewRel_NormalizesSign(t *testing.T) {
	for _, u := range []float64{0, 0.01, 0.5, 2} {
		pos := NewRel(-4.0, u)
		neg := NewRel(-4.0, -u)

		if pos.Uncertainty() != neg.Uncertainty() {
			t.Errorf("NewRel(-4, ±%g): uncertainties differ: %g vs %g", u, pos.Uncertainty(), neg.Uncertainty())
		}
		if neg.CoefficientOfVariation() < 0 {
			t.Errorf("NewRel(-4, -%g): negative coefficient of variation", u)
		}
	}
}

// TestAccessors verifies the derived accessors of both representations.
func TestAccessors(t *testing.T) {
	cfg := DefaultToleranceConfig()

	a := NewAbs(10.0, 1.0)
	AssertClose(t, "abs mean", a.Mean(), 10, cfg)
	AssertClose(t, "abs standard deviation", a.StandardDeviation(), 1, cfg)
	AssertClose(t, "abs coefficient of variation", a.CoefficientOfVariation(), 0.1, cfg)
	AssertClose(t, "abs native uncertainty", a.Uncertainty(), a.StandardDeviation(), cfg)

	r := NewRel(10.0, 0.1)
	AssertClose(t, "rel mean", r.Mean(), 10, cfg)
	AssertClose(t, "rel standard deviation", r.StandardDeviation(), 1, cfg)
	AssertClose(t, "rel coefficient of variation", r.CoefficientOfVariation(), 0.1, cfg)
	AssertClose(t, "rel native uncertainty", r.Uncertainty(), r.CoefficientOfVariation(), cfg)

	// Negative means still report non-negative errors
	n := NewRel(-10.0, 0.1)
	AssertClose(t, "negative mean standard deviation", n.StandardDeviation(), 1, cfg)
	AssertClose(t, "negative mean cv", NewAbs(-10.0, 1.0).CoefficientOfVariation(), 0.1, cfg)
}

// TestIsCertain verifies IsCertain is true exactly when the native uncertainty is zero.
func TestIsCertain(t *testing.T) {
	tests := []struct {
		name string
		u    Uncertainty[float64]
		want bool
	}{
		{"abs zero", NewAbs(3.0, 0.0), true},
		{"abs negative zero", NewAbs(3.0, math.Copysign(0, -1)), true},
		{"abs tiny", NewAbs(3.0, 1e-300), false},
		{"rel zero", NewRel(3.0, 0.0), true},
		{"rel nonzero", NewRel(3.0, 0.2), false},
		{"exact", Exact(3), true},
		{"zero value", AbsUncertainty[float64]{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.u.IsCertain(); got != tt.want {
				t.Errorf("IsCertain() = %v, want %v", got, tt.want)
			}
			if (tt.u.Uncertainty() == 0) != tt.u.IsCertain() {
				t.Errorf("IsCertain() disagrees with Uncertainty() = %g", tt.u.Uncertainty())
			}
		})
	}
}

// TestExact_Identity verifies a bare scalar behaves as a certain uncertain value.
func TestExact_Identity(t *testing.T) {
	for _, x := range []float64{0, -2.5, 1, 42, math.MaxFloat64} {
		e := Exact(x)

		if e.Mean() != x {
			t.Errorf("Exact(%g).Mean() = %g", x, e.Mean())
		}
		if e.Uncertainty() != 0 || e.StandardDeviation() != 0 || e.CoefficientOfVariation() != 0 {
			t.Errorf("Exact(%g) reports a non-zero uncertainty", x)
		}
		if !e.IsCertain() {
			t.Errorf("Exact(%g) is not certain", x)
		}
		if got := e.Absolute(); got != NewAbs(x, 0) {
			t.Errorf("Exact(%g).Absolute() = %v", x, got)
		}
		if got := e.Relative(); got != NewRel(x, 0) {
			t.Errorf("Exact(%g).Relative() = %v", x, got)
		}
	}

	if got := Exact(3).Powi(2); got != Exact(9) {
		t.Errorf("Exact(3).Powi(2) = %v, want 9", got)
	}
	if got := Exact32(2).Powi(3); got != Exact32(8) {
		t.Errorf("Exact32(2).Powi(3) = %v, want 8", got)
	}
}

// TestZeroValue verifies the zero value is the additive identity.
func TestZeroValue(t *testing.T) {
	var a AbsUncertainty[float64]
	if !a.IsZero() || !a.IsCertain() {
		t.Fatalf("zero AbsUncertainty should be zero and certain, got %v", a)
	}

	x := NewAbs(5.0, 2.0)
	if got := a.Add(x); got != x {
		t.Errorf("0 + %v = %v", x, got)
	}

	var r RelUncertainty[float64]
	if !r.IsZero() {
		t.Errorf("zero RelUncertainty should be zero")
	}
	if NewAbs(0.0, 3.0).IsZero() != true {
		t.Errorf("IsZero should only look at the mean")
	}
}

// TestRoundTrip_Random verifies Abs→Rel→Abs and Rel→Abs→Rel reproduce the input.
func TestRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cfg := DefaultToleranceConfig()

	for i := 0; i < 1000; i++ {
		mean := (rng.Float64() - 0.5) * 2000
		if mean == 0 {
			continue
		}
		unc := rng.Float64() * 100

		AssertRoundTrip[float64](t, NewAbs(mean, unc), cfg)
		AssertRoundTrip[float64](t, NewRel(mean, unc/100), cfg)
	}

	t.Logf("✓ 1000 random round trips within rel tol %g", cfg.RelTol)
}

// TestRoundTrip_Float32 verifies the round trip law in single precision.
func TestRoundTrip_Float32(t *testing.T) {
	cfg := Float32ToleranceConfig()

	for _, v := range []AbsUncertainty[float32]{
		NewAbs[float32](10, 1),
		NewAbs[float32](-3.5, 0.25),
		NewAbs[float32](1e-3, 1e-5),
	} {
		AssertRoundTrip[float32](t, v, cfg)
	}
}

// TestConversion_ZeroMean verifies conversion to relative at mean 0 yields sentinels.
func TestConversion_ZeroMean(t *testing.T) {
	withError := NewAbs(0.0, 1.0).Relative()
	if !math.IsInf(withError.CoefficientOfVariation(), 1) {
		t.Errorf("0 ± 1 → relative: want +Inf cv, got %g", withError.CoefficientOfVariation())
	}

	certain := NewAbs(0.0, 0.0).Relative()
	if !math.IsNaN(certain.CoefficientOfVariation()) {
		t.Errorf("0 ± 0 → relative: want NaN cv, got %g", certain.CoefficientOfVariation())
	}

	// Relative → absolute is always defined
	back := NewRel(0.0, 0.5).Absolute()
	if back.StandardDeviation() != 0 || back.Mean() != 0 {
		t.Errorf("0 ± 50%% → absolute: got %v", back)
	}
}

// TestConversion_Helpers verifies the free conversion functions.
func TestConversion_Helpers(t *testing.T) {
	r := NewRel(20.0, 0.05)

	if got := ToAbs[float64](r); got != r.Absolute() {
		t.Errorf("ToAbs = %v, want %v", got, r.Absolute())
	}
	if got := ToRel[float64](NewAbs(20.0, 1.0)); got != NewAbs(20.0, 1.0).Relative() {
		t.Errorf("ToRel = %v", got)
	}
	if got := ToExact(r); got != Exact(20) {
		t.Errorf("ToExact = %v, want 20", got)
	}
	if got := ToExact32(NewAbs[float32](1.5, 0.5)); got != Exact32(1.5) {
		t.Errorf("ToExact32 = %v, want 1.5", got)
	}
}
