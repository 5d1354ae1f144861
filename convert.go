package cert

// Absolute returns the value itself.
func (a AbsUncertainty[F]) Absolute() AbsUncertainty[F] {
	return a
}

// Relative converts to mean ± (standardDeviation / mean). A zero mean gives a
// NaN or +Inf coefficient of variation.
func (a AbsUncertainty[F]) Relative() RelUncertainty[F] {
	return NewRel(a.mean, a.standardDeviation/a.mean)
}

// Absolute converts to mean ± (coefficientOfVariation × mean).
func (r RelUncertainty[F]) Absolute() AbsUncertainty[F] {
	return NewAbs(r.mean, r.coefficientOfVariation*r.mean)
}

// Relative returns the value itself.
func (r RelUncertainty[F]) Relative() RelUncertainty[F] {
	return r
}

// ToAbs converts any Uncertainty to the absolute representation.
func ToAbs[F Float](u Uncertainty[F]) AbsUncertainty[F] {
	return u.Absolute()
}

// ToRel converts any Uncertainty to the relative representation.
func ToRel[F Float](u Uncertainty[F]) RelUncertainty[F] {
	return u.Relative()
}

// ToExact drops the uncertainty and keeps the mean.
func ToExact(u Uncertainty[float64]) Exact {
	return Exact(u.Mean())
}

// ToExact32 drops the uncertainty and keeps the mean.
func ToExact32(u Uncertainty[float32]) Exact32 {
	return Exact32(u.Mean())
}
