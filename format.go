package cert

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unsafe"
)

// FormatConfig controls the textual rendering of uncertain values.
type FormatConfig struct {
	// Digits after the decimal point. -1 selects the shortest representation
	// that parses back to the same float.
	Precision int

	// Render the relative form's coefficient of variation as a percentage
	// ("10 ± 5%") rather than a fraction ("10 ± 0.05").
	Percent bool

	// Placed between the mean and the uncertainty.
	Separator string
}

// DefaultFormatConfig returns the rendering used by String: two decimals,
// percentages for relative values, " ± " between the components.
func DefaultFormatConfig() FormatConfig {
	return FormatConfig{
		Precision: 2,
		Percent:   true,
		Separator: " ± ",
	}
}

// Validate checks the config for values strconv cannot honour.
func (c FormatConfig) Validate() error {
	if c.Precision < -1 || c.Precision > 17 {
		return fmt.Errorf("%w: precision %d outside [-1, 17]", ErrInvalidConfig, c.Precision)
	}
	if strings.TrimSpace(c.Separator) == "" {
		return fmt.Errorf("%w: separator must contain a non-space character", ErrInvalidConfig)
	}
	return nil
}

// Text renders a as "mean<sep>standardDeviation".
func (a AbsUncertainty[F]) Text(cfg FormatConfig) string {
	bits := bitSize[F]()
	return strconv.FormatFloat(float64(a.mean), 'f', cfg.Precision, bits) +
		cfg.Separator +
		strconv.FormatFloat(float64(a.standardDeviation), 'f', cfg.Precision, bits)
}

// Text renders r as "mean<sep>cv%" or, with Percent off, "mean<sep>cv".
func (r RelUncertainty[F]) Text(cfg FormatConfig) string {
	bits := bitSize[F]()
	unc, suffix := float64(r.coefficientOfVariation), ""
	if cfg.Percent {
		unc, suffix = unc*100, "%"
	}
	return strconv.FormatFloat(float64(r.mean), 'f', cfg.Precision, bits) +
		cfg.Separator +
		strconv.FormatFloat(unc, 'f', cfg.Precision, bits) + suffix
}

// String returns a.Text(DefaultFormatConfig()), e.g. "10.00 ± 1.00".
func (a AbsUncertainty[F]) String() string {
	return a.Text(DefaultFormatConfig())
}

// String returns r.Text(DefaultFormatConfig()), e.g. "10.00 ± 10.00%".
func (r RelUncertainty[F]) String() string {
	return r.Text(DefaultFormatConfig())
}

// Format implements fmt.Formatter. %v, %s and %f use two decimals unless a
// precision is given; %e and %g default to the shortest representation.
func (a AbsUncertainty[F]) Format(s fmt.State, verb rune) {
	writePair(s, verb, float64(a.mean), float64(a.standardDeviation), bitSize[F](), "")
}

// Format implements fmt.Formatter, rendering the uncertainty as a percentage.
func (r RelUncertainty[F]) Format(s fmt.State, verb rune) {
	writePair(s, verb, float64(r.mean), float64(r.coefficientOfVariation)*100, bitSize[F](), "%")
}

func writePair(s fmt.State, verb rune, mean, unc float64, bits int, suffix string) {
	cfg := DefaultFormatConfig()
	format, prec := byte('f'), cfg.Precision

	switch verb {
	case 'v', 's', 'f', 'F':
	case 'e', 'E', 'g', 'G':
		format, prec = byte(verb), -1
	default:
		fmt.Fprintf(s, "%%!%c(cert=%g±%g)", verb, mean, unc)
		return
	}
	if p, ok := s.Precision(); ok {
		prec = p
	}

	io.WriteString(s, strconv.FormatFloat(mean, format, prec, bits)+
		cfg.Separator+
		strconv.FormatFloat(unc, format, prec, bits)+suffix)
}

// bitSize is 32 or 64, for strconv.
func bitSize[F Float]() int {
	var zero F
	return int(unsafe.Sizeof(zero)) * 8
}
