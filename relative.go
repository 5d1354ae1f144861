package cert

// RelUncertainty is a quantity whose error is stored as a dimensionless fraction
// of the value: a mean and a coefficient of variation.
//
// A coefficient of variation of 0.05 means the standard deviation is 5% of
// the mean. The zero value is the certain quantity 0 ± 0%.
type RelUncertainty[F Float] struct {
	mean                   F
	coefficientOfVariation F // always ≥ 0
}

// NewRel returns mean with the given coefficient of variation. The sign of
// coefficientOfVariation is discarded.
func NewRel[F Float](mean, coefficientOfVariation F) RelUncertainty[F] {
	return RelUncertainty[F]{
		mean:                   mean,
		coefficientOfVariation: abs(coefficientOfVariation),
	}
}

// Mean implements Uncertainty.
func (r RelUncertainty[F]) Mean() F {
	return r.mean
}

// StandardDeviation returns |mean × coefficientOfVariation|.
func (r RelUncertainty[F]) StandardDeviation() F {
	return abs(r.mean * r.coefficientOfVariation)
}

// CoefficientOfVariation implements Uncertainty.
func (r RelUncertainty[F]) CoefficientOfVariation() F {
	return r.coefficientOfVariation
}

// Uncertainty returns the coefficient of variation, the native unit of the
// relative form.
func (r RelUncertainty[F]) Uncertainty() F {
	return r.coefficientOfVariation
}

// IsCertain implements Uncertainty.
func (r RelUncertainty[F]) IsCertain() bool {
	return r.Uncertainty() == 0
}

// IsZero reports whether the mean is zero.
func (r RelUncertainty[F]) IsZero() bool {
	return r.mean == 0
}
