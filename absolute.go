package cert

// AbsUncertainty is a quantity whose error is stored in the same unit as the
// value: a mean and a standard deviation.
//
// The zero value is the certain quantity 0 ± 0. Values are immutable; every
// arithmetic method returns a new AbsUncertainty.
type AbsUncertainty[F Float] struct {
	mean              F // central estimate
	standardDeviation F // always ≥ 0
}

// NewAbs returns mean ± standardDeviation. The sign of standardDeviation is
// discarded.
func NewAbs[F Float](mean, standardDeviation F) AbsUncertainty[F] {
	return AbsUncertainty[F]{
		mean:              mean,
		standardDeviation: abs(standardDeviation),
	}
}

// Mean implements Uncertainty.
func (a AbsUncertainty[F]) Mean() F {
	return a.mean
}

// StandardDeviation implements Uncertainty.
func (a AbsUncertainty[F]) StandardDeviation() F {
	return a.standardDeviation
}

// CoefficientOfVariation returns |standardDeviation / mean|. It is NaN or +Inf
// when the mean is zero.
func (a AbsUncertainty[F]) CoefficientOfVariation() F {
	return abs(a.standardDeviation / a.mean)
}

// Uncertainty returns the standard deviation, the native unit of the absolute form.
func (a AbsUncertainty[F]) Uncertainty() F {
	return a.standardDeviation
}

// IsCertain implements Uncertainty.
func (a AbsUncertainty[F]) IsCertain() bool {
	return a.Uncertainty() == 0
}

// IsZero reports whether the mean is zero, regardless of the uncertainty.
func (a AbsUncertainty[F]) IsZero() bool {
	return a.mean == 0
}
