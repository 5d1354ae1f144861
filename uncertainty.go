package cert

import "math"

// Float is the scalar precision an uncertain value is computed in.
type Float interface {
	~float32 | ~float64
}

// Uncertainty is the capability shared by every uncertain-value representation:
// AbsUncertainty, RelUncertainty and the certain scalars Exact and Exact32.
//
// Arithmetic on AbsUncertainty and RelUncertainty accepts any Uncertainty as the
// right operand, so the three variants compose freely in one expression.
type Uncertainty[F Float] interface {
	// Mean returns the central estimate.
	Mean() F

	// StandardDeviation returns the error in the same unit as the mean.
	StandardDeviation() F

	// CoefficientOfVariation returns the error as a fraction of the mean.
	CoefficientOfVariation() F

	// Uncertainty returns the error in the representation's native unit:
	// the standard deviation for AbsUncertainty, the coefficient of variation
	// for RelUncertainty, and zero for certain scalars.
	Uncertainty() F

	// IsCertain reports whether Uncertainty() == 0.
	IsCertain() bool

	// Absolute converts the value to the absolute representation.
	Absolute() AbsUncertainty[F]

	// Relative converts the value to the relative representation.
	Relative() RelUncertainty[F]
}

// Value is an Uncertainty that propagates through arithmetic and yields values
// of its own representation U. AbsUncertainty[F] and RelUncertainty[F] satisfy
// Value[F, AbsUncertainty[F]] and Value[F, RelUncertainty[F]] respectively.
type Value[F Float, U any] interface {
	Uncertainty[F]

	Add(other Uncertainty[F]) U
	Sub(other Uncertainty[F]) U
	Mul(other Uncertainty[F]) U
	Div(other Uncertainty[F]) U
	Powi(n int) U
}

var (
	_ Value[float64, AbsUncertainty[float64]] = AbsUncertainty[float64]{}
	_ Value[float32, AbsUncertainty[float32]] = AbsUncertainty[float32]{}
	_ Value[float64, RelUncertainty[float64]] = RelUncertainty[float64]{}
	_ Value[float32, RelUncertainty[float32]] = RelUncertainty[float32]{}
	_ Uncertainty[float64]                    = Exact(0)
	_ Uncertainty[float32]                    = Exact32(0)
)

func sqrt[F Float](x F) F {
	return F(math.Sqrt(float64(x)))
}

func abs[F Float](x F) F {
	return F(math.Abs(float64(x)))
}

// powi raises x to an integer power. Negative n with x == 0 yields +Inf, as
// IEEE-754 pow does.
func powi[F Float](x F, n int) F {
	return F(math.Pow(float64(x), float64(n)))
}
