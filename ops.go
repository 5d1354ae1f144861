package cert

// Propagation rules. Every rule works on the native-unit uncertainties of two
// operands already expressed in the same representation, and assumes the
// operands are statistically independent.
//
//	add, sub:  σ = √(σa² + σb²)
//	mul:       σ = √(σa²·b² + σb²·a²)
//	div:       σ = √(σa²/b² + a²·σb²/b⁴)
//	powi n:    σ = √(n²·a^(2n−2)·σa²)
//
// Nothing here checks its inputs. A zero divisor or a zero base with a negative
// exponent produces ±Inf or NaN, which then flows through later arithmetic.

func addRule[F Float](am, au, bm, bu F) (F, F) {
	return am + bm, sqrt(au*au + bu*bu)
}

func subRule[F Float](am, au, bm, bu F) (F, F) {
	return am - bm, sqrt(au*au + bu*bu)
}

func mulRule[F Float](am, au, bm, bu F) (F, F) {
	return am * bm, sqrt(au*au*bm*bm + bu*bu*am*am)
}

func divRule[F Float](am, au, bm, bu F) (F, F) {
	b2 := bm * bm
	return am / bm, sqrt(au*au/b2 + am*am*bu*bu/(b2*b2))
}

func powiRule[F Float](am, au F, n int) (F, F) {
	if n == 0 {
		return 1, 0
	}
	nf := F(n)
	return powi(am, n), sqrt(nf * nf * powi(am, 2*n-2) * au * au)
}

// Add returns a + other. The result stays absolute whatever other's representation.
func (a AbsUncertainty[F]) Add(other Uncertainty[F]) AbsUncertainty[F] {
	b := other.Absolute()
	return NewAbs[F](addRule(a.mean, a.Uncertainty(), b.mean, b.Uncertainty()))
}

// Sub returns a − other. Variances add, as for Add.
func (a AbsUncertainty[F]) Sub(other Uncertainty[F]) AbsUncertainty[F] {
	b := other.Absolute()
	return NewAbs[F](subRule(a.mean, a.Uncertainty(), b.mean, b.Uncertainty()))
}

// Mul returns a × other.
func (a AbsUncertainty[F]) Mul(other Uncertainty[F]) AbsUncertainty[F] {
	b := other.Absolute()
	return NewAbs[F](mulRule(a.mean, a.Uncertainty(), b.mean, b.Uncertainty()))
}

// Div returns a / other.
func (a AbsUncertainty[F]) Div(other Uncertainty[F]) AbsUncertainty[F] {
	b := other.Absolute()
	return NewAbs[F](divRule(a.mean, a.Uncertainty(), b.mean, b.Uncertainty()))
}

// Powi returns a raised to the nth power.
func (a AbsUncertainty[F]) Powi(n int) AbsUncertainty[F] {
	return NewAbs[F](powiRule(a.mean, a.Uncertainty(), n))
}

// Add returns r + other in the relative representation. The rule combines
// coefficients of variation directly.
func (r RelUncertainty[F]) Add(other Uncertainty[F]) RelUncertainty[F] {
	b := other.Relative()
	return NewRel[F](addRule(r.mean, r.Uncertainty(), b.mean, b.Uncertainty()))
}

// Sub returns r − other in the relative representation.
func (r RelUncertainty[F]) Sub(other Uncertainty[F]) RelUncertainty[F] {
	b := other.Relative()
	return NewRel[F](subRule(r.mean, r.Uncertainty(), b.mean, b.Uncertainty()))
}

// Mul returns r × other in the relative representation.
func (r RelUncertainty[F]) Mul(other Uncertainty[F]) RelUncertainty[F] {
	b := other.Relative()
	return NewRel[F](mulRule(r.mean, r.Uncertainty(), b.mean, b.Uncertainty()))
}

// Div returns r / other in the relative representation.
func (r RelUncertainty[F]) Div(other Uncertainty[F]) RelUncertainty[F] {
	b := other.Relative()
	return NewRel[F](divRule(r.mean, r.Uncertainty(), b.mean, b.Uncertainty()))
}

// Powi returns r raised to the nth power in the relative representation.
func (r RelUncertainty[F]) Powi(n int) RelUncertainty[F] {
	return NewRel[F](powiRule(r.mean, r.Uncertainty(), n))
}

// Sum folds Add over rest, starting from first. The result has first's
// representation.
//
//	total := cert.Sum[float64](a, b, cert.Exact(3))
func Sum[F Float, U Value[F, U]](first U, rest ...Uncertainty[F]) U {
	acc := first
	for _, v := range rest {
		acc = acc.Add(v)
	}
	return acc
}

// Product folds Mul over rest, starting from first.
func Product[F Float, U Value[F, U]](first U, rest ...Uncertainty[F]) U {
	acc := first
	for _, v := range rest {
		acc = acc.Mul(v)
	}
	return acc
}
