// Package cert represents numeric quantities together with a statistical
// uncertainty and propagates that uncertainty analytically through arithmetic.
//
// # Overview
//
// Every measured or derived value carries an error. cert keeps the error next
// to the value and composes it with first-order (linearized) variance
// propagation whenever values are added, subtracted, multiplied, divided or
// raised to an integer power.
//
// # Representations
//
// Two representations store the same information differently:
//
//   - AbsUncertainty - mean and standard deviation, in the unit of the mean
//   - RelUncertainty - mean and coefficient of variation (σ / mean)
//
// A third, Exact (and Exact32 for float32), is a bare scalar known without
// error. All three satisfy the Uncertainty interface:
//
//	length := cert.NewAbs(10.0, 1.0)       // 10 ± 1
//	width := cert.NewRel(5.0, 0.4)         // 5 ± 40%
//	area := length.Mul(width)              // 50 ± 20.62 (absolute)
//	half := area.Div(cert.Exact(2))        // 25 ± 10.31
//
// Both constructors take the absolute value of the uncertainty, so the stored
// error is never negative.
//
// # Left-Operand Dominance
//
// Arithmetic methods accept any Uncertainty as the right operand, convert it
// into the left operand's representation, and return the left operand's
// representation:
//
//	a := cert.NewAbs(10.0, 1.0)
//	r := cert.NewRel(5.0, 0.4)
//
//	a.Add(r) // AbsUncertainty
//	r.Add(a) // RelUncertainty
//
// # Propagation Rules
//
// With σ the native uncertainty of each operand (standard deviation for the
// absolute form, coefficient of variation for the relative form):
//
//	a + b, a - b:  σ = √(σa² + σb²)
//	a × b:         σ = √(σa²·b² + σb²·a²)
//	a / b:         σ = √(σa²/b² + a²·σb²/b⁴)
//	aⁿ:            σ = √(n²·a^(2n−2)·σa²)
//
// The rules apply to the relative form unchanged, on coefficients of
// variation. NewRel(10.0, 0.1).Mul(cert.Exact(3)) therefore has a coefficient
// of variation of 0.3, not 0.1; use the absolute form for physical scaling.
//
// Operands are treated as statistically independent. Computing x.Sub(x)
// therefore reports √2·σ rather than zero: correlation between operands is
// not tracked.
//
// # Failure Model
//
// Arithmetic never returns errors and never panics. Degenerate inputs follow
// IEEE-754: dividing by a zero mean yields ±Inf or NaN, converting a zero-mean
// absolute value to relative yields a NaN or +Inf coefficient of variation,
// and those sentinels propagate through later operations. Check IsCertain or
// math.IsInf/IsNaN where the domain requires a well-behaved mean.
//
// Errors appear only at the boundaries: Parse and UnmarshalText return
// ErrSyntax, JSON encoding of non-finite components returns ErrNotFinite, and
// the sample statistics return ErrEmptySample or ErrLengthMismatch.
//
// # Text and Records
//
// String renders "10.00 ± 1.00" (absolute) and "10.00 ± 10.00%" (relative);
// Format honours precision, so fmt.Sprintf("%.3f", v) works. MarshalText
// emits the shortest round-trip form and Parse reads "10 ± 1", "10 +- 1",
// "10 +/- 1", "10 ± 10%" and bare numbers.
//
// JSON and YAML encode two-field records:
//
//	{"mean": 10, "standard_deviation": 1}
//	{"mean": 10, "coefficient_of_variation": 0.1}
//
// Decoding also accepts the text form as a string.
//
// # Samples
//
// FromSamples and StandardErrorOf build a value from repeated measurements;
// Combine merges independent measurements of one quantity by inverse-variance
// weighting.
//
// Measure applies the same estimate to timings: it calls an Operation for a
// fixed duration and reports the latency in seconds with its spread.
//
//	latency, _, err := cert.Measure(ctx, op, cert.DefaultMeasureConfig())
//	opsPerSecond := cert.Throughput(latency, 1)
//
// # Testing
//
// AssertClose, AssertUncertaintyClose and AssertRoundTrip check propagated
// results within a ToleranceConfig:
//
//	func TestArea(t *testing.T) {
//	    area := cert.NewAbs(10.0, 1.0).Mul(cert.NewAbs(5.0, 2.0))
//	    cert.AssertUncertaintyClose[float64](t, area, 50, math.Sqrt(425), cert.DefaultToleranceConfig())
//	}
//
// # Concurrency
//
// All types are small immutable values. They can be copied and shared across
// goroutines without synchronization.
package cert
