package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/alexshd/cert"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Computation failure (empty sample, unencodable result)
	ExitCommandError = 2 // Command error (bad syntax, unknown name, missing file)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Result is one reported value in structured output.
type Result struct {
	Name                   string  `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Kind                   string  `json:"kind" yaml:"kind" toml:"kind"` // absolute | relative | exact
	Mean                   float64 `json:"mean" yaml:"mean" toml:"mean"`
	StandardDeviation      float64 `json:"standard_deviation" yaml:"standard_deviation" toml:"standard_deviation"`
	CoefficientOfVariation float64 `json:"coefficient_of_variation" yaml:"coefficient_of_variation" toml:"coefficient_of_variation"`
	Text                   string  `json:"text" yaml:"text" toml:"text"`

	value cert.Uncertainty[float64]
}

// NewResult describes v. Text is the shortest form that parses back to v.
func NewResult(name string, v cert.Uncertainty[float64]) Result {
	r := Result{
		Name:                   name,
		Mean:                   v.Mean(),
		StandardDeviation:      v.StandardDeviation(),
		CoefficientOfVariation: v.CoefficientOfVariation(),
		value:                  v,
	}

	switch u := v.(type) {
	case cert.RelUncertainty[float64]:
		r.Kind = "relative"
		r.Text = u.Text(shortest)
	case cert.Exact:
		r.Kind = "exact"
		r.Text = strconv.FormatFloat(u.Mean(), 'f', -1, 64)
	default:
		r.Kind = "absolute"
		r.Text = v.Absolute().Text(shortest)
	}
	return r
}

var shortest = cert.FormatConfig{Precision: -1, Percent: true, Separator: " ± "}

// OutputFormatter renders results as text, JSON, YAML or TOML.
type OutputFormatter struct {
	Format   string
	Writer   io.Writer
	Text     cert.FormatConfig
	Locale   string
	Relative bool // report uncertain values in relative form
}

// Value writes a single unnamed result.
func (f *OutputFormatter) Value(v cert.Uncertainty[float64]) error {
	return f.Results(NewResult("", f.present(v)))
}

// Results writes one or more results in the configured format.
func (f *OutputFormatter) Results(rs ...Result) error {
	switch f.Format {
	case "json":
		var data []byte
		var err error
		if len(rs) == 1 {
			data, err = sonic.Marshal(rs[0])
		} else {
			data, err = sonic.Marshal(rs)
		}
		if err != nil {
			return WrapExitError(ExitFailure, "failed to encode json", err)
		}
		_, err = fmt.Fprintf(f.Writer, "%s\n", data)
		return err

	case "yaml":
		var data []byte
		var err error
		if len(rs) == 1 {
			data, err = yaml.Marshal(rs[0])
		} else {
			data, err = yaml.Marshal(rs)
		}
		if err != nil {
			return WrapExitError(ExitFailure, "failed to encode yaml", err)
		}
		_, err = f.Writer.Write(data)
		return err

	case "toml":
		var data []byte
		var err error
		if len(rs) == 1 {
			data, err = toml.Marshal(rs[0])
		} else {
			data, err = toml.Marshal(struct {
				Results []Result `toml:"result"`
			}{rs})
		}
		if err != nil {
			return WrapExitError(ExitFailure, "failed to encode toml", err)
		}
		_, err = f.Writer.Write(data)
		return err
	}

	for _, r := range rs {
		line := f.render(r.value)
		if r.Name != "" {
			line = r.Name + " = " + line
		}
		if _, err := fmt.Fprintln(f.Writer, line); err != nil {
			return err
		}
	}
	return nil
}

func (f *OutputFormatter) present(v cert.Uncertainty[float64]) cert.Uncertainty[float64] {
	if f.Relative && !v.IsCertain() {
		return v.Relative()
	}
	return v
}

// render formats v for text output, localized when a locale is set.
func (f *OutputFormatter) render(v cert.Uncertainty[float64]) string {
	if f.Locale == "" {
		switch u := v.(type) {
		case cert.RelUncertainty[float64]:
			return u.Text(f.Text)
		case cert.Exact:
			return strconv.FormatFloat(u.Mean(), 'f', f.Text.Precision, 64)
		default:
			return v.Absolute().Text(f.Text)
		}
	}

	p := message.NewPrinter(language.Make(f.Locale))
	verb := "%v"
	if f.Text.Precision >= 0 {
		verb = "%." + strconv.Itoa(f.Text.Precision) + "f"
	}

	mean := p.Sprintf(verb, v.Mean())
	switch u := v.(type) {
	case cert.Exact:
		return mean
	case cert.RelUncertainty[float64]:
		if f.Text.Percent {
			return mean + f.Text.Separator + p.Sprintf(verb, u.CoefficientOfVariation()*100) + "%"
		}
		return mean + f.Text.Separator + p.Sprintf(verb, u.CoefficientOfVariation())
	default:
		return mean + f.Text.Separator + p.Sprintf(verb, v.StandardDeviation())
	}
}

// inputError maps a parse or lookup failure to a command error.
func inputError(err error) error {
	return WrapExitError(ExitCommandError, "invalid input", err)
}
