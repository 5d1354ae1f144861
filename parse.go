package cert

import (
	"fmt"
	"strconv"
	"strings"
)

// separators accepted between mean and uncertainty, in match order.
var separators = []string{"±", "+/-", "+-"}

type parsedText struct {
	mean        float64
	uncertainty float64
	relative    bool // uncertainty carried a % suffix; stored as a fraction
	certain     bool // no separator at all
}

// parseText reads "m ± u", "m +- u", "m +/- u", "m ± u%" or a bare "m".
func parseText(s string) (parsedText, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return parsedText{}, fmt.Errorf("%w: empty input", ErrSyntax)
	}

	for _, sep := range separators {
		i := strings.Index(s, sep)
		if i < 0 {
			continue
		}

		left := strings.TrimSpace(s[:i])
		right := strings.TrimSpace(s[i+len(sep):])

		mean, err := strconv.ParseFloat(left, 64)
		if err != nil {
			return parsedText{}, fmt.Errorf("%w: mean %q in %q", ErrSyntax, left, s)
		}

		relative := strings.HasSuffix(right, "%")
		if relative {
			right = strings.TrimSpace(strings.TrimSuffix(right, "%"))
		}
		unc, err := strconv.ParseFloat(right, 64)
		if err != nil {
			return parsedText{}, fmt.Errorf("%w: uncertainty %q in %q", ErrSyntax, right, s)
		}
		if relative {
			unc /= 100
		}

		return parsedText{mean: mean, uncertainty: unc, relative: relative}, nil
	}

	mean, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return parsedText{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return parsedText{mean: mean, certain: true}, nil
}

// ParseAny reads a textual uncertainty and returns it in the representation
// the text implies: "10 ± 1" is an AbsUncertainty, "10 ± 5%" a
// RelUncertainty, and a bare "10" an Exact.
func ParseAny(s string) (Uncertainty[float64], error) {
	p, err := parseText(s)
	if err != nil {
		return nil, err
	}
	switch {
	case p.certain:
		return Exact(p.mean), nil
	case p.relative:
		return NewRel(p.mean, p.uncertainty), nil
	default:
		return NewAbs(p.mean, p.uncertainty), nil
	}
}

// Parse reads a textual uncertainty into the absolute representation.
func Parse(s string) (AbsUncertainty[float64], error) {
	u, err := ParseAny(s)
	if err != nil {
		return AbsUncertainty[float64]{}, err
	}
	return u.Absolute(), nil
}

// ParseRel reads a textual uncertainty into the relative representation.
func ParseRel(s string) (RelUncertainty[float64], error) {
	u, err := ParseAny(s)
	if err != nil {
		return RelUncertainty[float64]{}, err
	}
	return u.Relative(), nil
}

// MarshalText implements encoding.TextMarshaler with the shortest round-trip
// digits, e.g. "10 ± 0.25".
func (a AbsUncertainty[F]) MarshalText() ([]byte, error) {
	cfg := DefaultFormatConfig()
	cfg.Precision = -1
	return []byte(a.Text(cfg)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Relative text is
// converted to absolute; a bare number is certain.
func (a *AbsUncertainty[F]) UnmarshalText(text []byte) error {
	p, err := parseText(string(text))
	if err != nil {
		return err
	}
	if p.relative {
		*a = NewRel(F(p.mean), F(p.uncertainty)).Absolute()
		return nil
	}
	*a = NewAbs(F(p.mean), F(p.uncertainty))
	return nil
}

// MarshalText implements encoding.TextMarshaler, e.g. "10 ± 2.5%".
func (r RelUncertainty[F]) MarshalText() ([]byte, error) {
	cfg := DefaultFormatConfig()
	cfg.Precision = -1
	return []byte(r.Text(cfg)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Absolute text is
// converted to relative.
func (r *RelUncertainty[F]) UnmarshalText(text []byte) error {
	p, err := parseText(string(text))
	if err != nil {
		return err
	}
	if p.relative || p.certain {
		*r = NewRel(F(p.mean), F(p.uncertainty))
		return nil
	}
	*r = NewAbs(F(p.mean), F(p.uncertainty)).Relative()
	return nil
}
