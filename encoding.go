package cert

import (
	"bytes"
	"fmt"
	"math"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// absRecord is the two-field wire form of AbsUncertainty.
type absRecord[F Float] struct {
	Mean              F `json:"mean" yaml:"mean"`
	StandardDeviation F `json:"standard_deviation" yaml:"standard_deviation"`
}

// relRecord is the two-field wire form of RelUncertainty.
type relRecord[F Float] struct {
	Mean                   F `json:"mean" yaml:"mean"`
	CoefficientOfVariation F `json:"coefficient_of_variation" yaml:"coefficient_of_variation"`
}

func finite[F Float](vs ...F) error {
	for _, v := range vs {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("%w: %v", ErrNotFinite, v)
		}
	}
	return nil
}

// MarshalJSON encodes a as {"mean": m, "standard_deviation": s}.
func (a AbsUncertainty[F]) MarshalJSON() ([]byte, error) {
	if err := finite(a.mean, a.standardDeviation); err != nil {
		return nil, err
	}
	return sonic.Marshal(absRecord[F]{Mean: a.mean, StandardDeviation: a.standardDeviation})
}

// UnmarshalJSON accepts the record form, a string in text form ("10 ± 1"),
// or a bare number (certain). null leaves a unchanged.
func (a *AbsUncertainty[F]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := sonic.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("cert: decode absolute uncertainty: %w", err)
		}
		return a.UnmarshalText([]byte(s))
	case len(data) > 0 && data[0] != '{':
		return a.UnmarshalText(data)
	}

	var rec absRecord[F]
	if err := sonic.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("cert: decode absolute uncertainty: %w", err)
	}
	*a = NewAbs(rec.Mean, rec.StandardDeviation)
	return nil
}

// MarshalJSON encodes r as {"mean": m, "coefficient_of_variation": c}.
func (r RelUncertainty[F]) MarshalJSON() ([]byte, error) {
	if err := finite(r.mean, r.coefficientOfVariation); err != nil {
		return nil, err
	}
	return sonic.Marshal(relRecord[F]{Mean: r.mean, CoefficientOfVariation: r.coefficientOfVariation})
}

// UnmarshalJSON accepts the record form, a text-form string or a bare number.
func (r *RelUncertainty[F]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := sonic.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("cert: decode relative uncertainty: %w", err)
		}
		return r.UnmarshalText([]byte(s))
	case len(data) > 0 && data[0] != '{':
		return r.UnmarshalText(data)
	}

	var rec relRecord[F]
	if err := sonic.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("cert: decode relative uncertainty: %w", err)
	}
	*r = NewRel(rec.Mean, rec.CoefficientOfVariation)
	return nil
}

// MarshalYAML implements yaml.Marshaler with the same record as MarshalJSON.
func (a AbsUncertainty[F]) MarshalYAML() (interface{}, error) {
	return absRecord[F]{Mean: a.mean, StandardDeviation: a.standardDeviation}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A scalar node is read as text.
func (a *AbsUncertainty[F]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return a.UnmarshalText([]byte(node.Value))
	}

	var rec absRecord[F]
	if err := node.Decode(&rec); err != nil {
		return fmt.Errorf("cert: decode absolute uncertainty: %w", err)
	}
	*a = NewAbs(rec.Mean, rec.StandardDeviation)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r RelUncertainty[F]) MarshalYAML() (interface{}, error) {
	return relRecord[F]{Mean: r.mean, CoefficientOfVariation: r.coefficientOfVariation}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *RelUncertainty[F]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return r.UnmarshalText([]byte(node.Value))
	}

	var rec relRecord[F]
	if err := node.Decode(&rec); err != nil {
		return fmt.Errorf("cert: decode relative uncertainty: %w", err)
	}
	*r = NewRel(rec.Mean, rec.CoefficientOfVariation)
	return nil
}
