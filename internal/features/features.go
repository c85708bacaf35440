// Package features validates raw prediction payloads and builds the
// fixed-order numeric vector the hiring classifier was trained on.
package features

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrValidation is wrapped by every validation failure so handlers can
// classify with errors.Is.
var ErrValidation = errors.New("invalid input")

type kind int

const (
	kindFloat kind = iota
	kindInt
)

type field struct {
	name string
	kind kind
}

// schema lists the recognized payload keys in the exact order the model
// expects them. Keys are case-sensitive camelCase.
var schema = []field{
	{"age", kindFloat},
	{"gender", kindInt},
	{"educationLevel", kindInt},
	{"experienceYears", kindFloat},
	{"previousCompanies", kindInt},
	{"distanceFromCompany", kindFloat},
	{"interviewScore", kindFloat},
	{"skillScore", kindFloat},
	{"personalityScore", kindFloat},
	{"recruitmentStrategy", kindInt},
}

// FeatureNames returns the recognized feature keys in vector order.
func FeatureNames() []string {
	names := make([]string, len(schema))
	for i, f := range schema {
		names[i] = f.name
	}
	return names
}

// Count is the dimensionality of the trained feature schema.
const Count = 10

// Build coerces payload into a ten-element vector in schema order. A missing
// key or a value that cannot be coerced to the required numeric type fails
// with an error wrapping ErrValidation. No range or categorical checks are
// applied; coercion success is the only gate.
func Build(payload map[string]any) ([]float64, error) {
	vector := make([]float64, 0, len(schema))
	for _, f := range schema {
		raw, ok := payload[f.name]
		if !ok {
			return nil, fmt.Errorf("%w: missing field %q", ErrValidation, f.name)
		}

		var (
			v   float64
			err error
		)
		switch f.kind {
		case kindInt:
			v, err = toInt(raw)
		default:
			v, err = toFloat(raw)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrValidation, f.name, err)
		}
		vector = append(vector, v)
	}
	return vector, nil
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to number", x)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to number", v)
	}
}

// toInt truncates fractional values the way the original int() casts did;
// strings must parse as whole integers.
func toInt(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return float64(int64(x)), nil
	case float32:
		return float64(int64(x)), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case string:
		i, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to integer", x)
		}
		return float64(i), nil
	default:
		return 0, fmt.Errorf("cannot convert %T to integer", v)
	}
}
