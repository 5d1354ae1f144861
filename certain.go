package cert

// Exact is a float64 known without error. It satisfies Uncertainty[float64] with
// zero uncertainty, so exact scalars mix with uncertain values:
//
//	area := side.Powi(2).Mul(cert.Exact(0.5))
type Exact float64

func (x Exact) Mean() float64                   { return float64(x) }
func (x Exact) StandardDeviation() float64      { return 0 }
func (x Exact) CoefficientOfVariation() float64 { return 0 }
func (x Exact) Uncertainty() float64            { return 0 }
func (x Exact) IsCertain() bool                 { return true }

// Absolute returns x ± 0.
func (x Exact) Absolute() AbsUncertainty[float64] {
	return NewAbs(float64(x), 0)
}

// Relative returns x ± 0%.
func (x Exact) Relative() RelUncertainty[float64] {
	return NewRel(float64(x), 0)
}

// Powi returns x raised to the nth power. The result stays exact.
func (x Exact) Powi(n int) Exact {
	return Exact(powi(float64(x), n))
}

// Exact32 is the float32 counterpart of Exact.
type Exact32 float32

func (x Exact32) Mean() float32                   { return float32(x) }
func (x Exact32) StandardDeviation() float32      { return 0 }
func (x Exact32) CoefficientOfVariation() float32 { return 0 }
func (x Exact32) Uncertainty() float32            { return 0 }
func (x Exact32) IsCertain() bool                 { return true }

func (x Exact32) Absolute() AbsUncertainty[float32] {
	return NewAbs(float32(x), 0)
}

func (x Exact32) Relative() RelUncertainty[float32] {
	return NewRel(float32(x), 0)
}

func (x Exact32) Powi(n int) Exact32 {
	return Exact32(powi(float32(x), n))
}
