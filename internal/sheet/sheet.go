// Package sheet loads named measurements for the cert CLI.
//
// A sheet is a flat table of name → value. Values may be written as text
// ("9.81 ± 0.02", "20 ± 5%", "3"), or in JSON and YAML as the same two-field
// records the cert types encode to:
//
//	g:
//	  mean: 9.81
//	  standard_deviation: 0.02
//	l: 1.20 ± 0.5%
//
// TOML sheets use the text form, or inline tables with the record fields.
package sheet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/alexshd/cert"
)

var (
	// ErrUnknownFormat is returned for file extensions with no decoder.
	ErrUnknownFormat = errors.New("sheet: unknown format")

	// ErrInvalidEntry is returned when a value is neither text, number nor record.
	ErrInvalidEntry = errors.New("sheet: invalid entry")
)

// Sheet maps measurement names to values.
type Sheet map[string]cert.Uncertainty[float64]

// Names returns the measurement names in sorted order.
func (s Sheet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named value.
func (s Sheet) Lookup(name string) (cert.Uncertainty[float64], bool) {
	v, ok := s[name]
	return v, ok
}

// FormatOf maps a file extension to a format name: json, yaml or toml.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Load reads a sheet, choosing the decoder by file extension.
func Load(path string) (Sheet, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet %q: %w", path, err)
	}
	defer f.Close()

	s, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", path, err)
	}
	return s, nil
}

// Decode reads a sheet in the given format.
func Decode(r io.Reader, format string) (Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	raw := map[string]any{}
	switch format {
	case "json":
		err = sonic.Unmarshal(data, &raw)
	case "yaml":
		err = yaml.Unmarshal(data, &raw)
	case "toml":
		err = toml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s sheet: %w", format, err)
	}

	s := make(Sheet, len(raw))
	for name, v := range raw {
		u, err := entry(v)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}
		s[name] = u
	}
	return s, nil
}

// entry converts one decoded value into an uncertainty.
func entry(v any) (cert.Uncertainty[float64], error) {
	if x, ok := number(v); ok {
		return cert.Exact(x), nil
	}

	switch x := v.(type) {
	case string:
		return cert.ParseAny(x)
	case map[string]any:
		return record(x)
	default:
		return nil, fmt.Errorf("%w: unsupported value %v (%T)", ErrInvalidEntry, v, v)
	}
}

func record(fields map[string]any) (cert.Uncertainty[float64], error) {
	mean, ok := number(fields["mean"])
	if !ok {
		return nil, fmt.Errorf("%w: record needs a numeric mean", ErrInvalidEntry)
	}
	if sd, ok := number(fields["standard_deviation"]); ok {
		return cert.NewAbs(mean, sd), nil
	}
	if cv, ok := number(fields["coefficient_of_variation"]); ok {
		return cert.NewRel(mean, cv), nil
	}
	return nil, fmt.Errorf("%w: record needs standard_deviation or coefficient_of_variation", ErrInvalidEntry)
}

// number accepts the numeric types the JSON, YAML and TOML decoders produce.
func number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
