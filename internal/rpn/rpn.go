// Package rpn evaluates postfix expressions over uncertain values.
//
// Tokens are literals ("10±1", "10+-1", "20±5%", "3"), names resolved from a
// sheet, the binary operators + - * x /, and ^n for integer powers:
//
//	10±1 5±2 *        → 50 ± 20.62
//	g l ^2 * 2 /      → g·l²/2
//
// Each binary operator follows the cert left-operand rule: the result has the
// representation of the operand pushed first. A certain scalar on the left is
// promoted to the absolute form, or to the relative form with WithRelative.
package rpn

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alexshd/cert"
)

var (
	// ErrEmpty is returned for an expression with no tokens.
	ErrEmpty = errors.New("rpn: empty expression")

	// ErrStackUnderflow is returned when an operator lacks operands.
	ErrStackUnderflow = errors.New("rpn: stack underflow")

	// ErrUnbalanced is returned when operands remain after the last operator.
	ErrUnbalanced = errors.New("rpn: unbalanced expression")

	// ErrUnknownToken is returned for a token that is neither operator, name nor literal.
	ErrUnknownToken = errors.New("rpn: unknown token")
)

// Resolver looks up named values.
type Resolver interface {
	Lookup(name string) (cert.Uncertainty[float64], bool)
}

// Evaluator evaluates token lists. It holds no per-expression state and may
// be reused.
type Evaluator struct {
	names    Resolver
	relative bool
	logger   *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithNames resolves identifiers through r.
func WithNames(r Resolver) Option {
	return func(e *Evaluator) {
		e.names = r
	}
}

// WithRelative promotes certain left operands to the relative form.
func WithRelative() Option {
	return func(e *Evaluator) {
		e.relative = true
	}
}

// WithLogger logs each evaluation step at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = l
	}
}

// New creates an evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs tokens and returns the single value left on the stack.
func (e *Evaluator) Evaluate(tokens []string) (cert.Uncertainty[float64], error) {
	if len(tokens) == 0 {
		return nil, ErrEmpty
	}

	var stack []cert.Uncertainty[float64]
	pop := func() cert.Uncertainty[float64] {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}

	for i, tok := range tokens {
		switch {
		case isBinary(tok):
			if len(stack) < 2 {
				return nil, fmt.Errorf("%w: %q at position %d needs two operands", ErrStackUnderflow, tok, i+1)
			}
			b := pop()
			a := pop()
			r := e.binary(tok, a, b)
			e.logger.Debug("apply", "op", tok, "left", a, "right", b, "result", r)
			stack = append(stack, r)

		case strings.HasPrefix(tok, "^"):
			n, err := strconv.Atoi(tok[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: exponent %q at position %d", ErrUnknownToken, tok, i+1)
			}
			if len(stack) < 1 {
				return nil, fmt.Errorf("%w: %q at position %d needs an operand", ErrStackUnderflow, tok, i+1)
			}
			a := pop()
			r := e.powi(a, n)
			e.logger.Debug("apply", "op", tok, "operand", a, "result", r)
			stack = append(stack, r)

		default:
			v, err := e.operand(tok)
			if err != nil {
				return nil, fmt.Errorf("position %d: %w", i+1, err)
			}
			e.logger.Debug("push", "token", tok, "value", v)
			stack = append(stack, v)
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %d values left on the stack", ErrUnbalanced, len(stack))
	}
	return stack[0], nil
}

func (e *Evaluator) operand(tok string) (cert.Uncertainty[float64], error) {
	if e.names != nil {
		if v, ok := e.names.Lookup(tok); ok {
			return v, nil
		}
	}

	v, err := cert.ParseAny(tok)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrUnknownToken, tok, err)
	}
	return v, nil
}

// promote gives a certain scalar a representation that supports arithmetic.
func (e *Evaluator) promote(v cert.Uncertainty[float64]) cert.Uncertainty[float64] {
	switch v.(type) {
	case cert.AbsUncertainty[float64], cert.RelUncertainty[float64]:
		return v
	}
	if e.relative {
		return v.Relative()
	}
	return v.Absolute()
}

func (e *Evaluator) binary(op string, a, b cert.Uncertainty[float64]) cert.Uncertainty[float64] {
	switch left := e.promote(a).(type) {
	case cert.RelUncertainty[float64]:
		return apply(left, op, b)
	default:
		return apply(left.Absolute(), op, b)
	}
}

func (e *Evaluator) powi(a cert.Uncertainty[float64], n int) cert.Uncertainty[float64] {
	switch v := a.(type) {
	case cert.Exact:
		return v.Powi(n)
	case cert.RelUncertainty[float64]:
		return v.Powi(n)
	default:
		return a.Absolute().Powi(n)
	}
}

func apply[U cert.Value[float64, U]](a U, op string, b cert.Uncertainty[float64]) cert.Uncertainty[float64] {
	switch op {
	case "+":
		return a.Add(b)
	case "-":
		return a.Sub(b)
	case "*", "x":
		return a.Mul(b)
	default:
		return a.Div(b)
	}
}

func isBinary(tok string) bool {
	switch tok {
	case "+", "-", "*", "x", "/":
		return true
	}
	return false
}
