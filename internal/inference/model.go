package inference

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
)

const defaultThreshold = 0.5

// Model is a pre-trained logistic regression classifier for the binary
// hired/not-hired decision. Immutable after load; safe for concurrent use.
type Model struct {
	Features     []string  `json:"features"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	Threshold    float64   `json:"threshold"`
}

// LoadModel reads trained classifier weights from a JSON file.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse model file: %w", err)
	}

	if len(m.Coefficients) == 0 {
		return nil, fmt.Errorf("%w: no coefficients", ErrInvalidModel)
	}
	if len(m.Features) > 0 && len(m.Features) != len(m.Coefficients) {
		return nil, fmt.Errorf("%w: %d feature names for %d coefficients",
			ErrInvalidModel, len(m.Features), len(m.Coefficients))
	}
	if m.Threshold == 0 {
		m.Threshold = defaultThreshold
	}
	return &m, nil
}

// PositiveProbability returns the probability the model assigns to the
// positive (hired) class for an already-scaled vector.
func (m *Model) PositiveProbability(scaled []float64) (float64, error) {
	if len(scaled) != len(m.Coefficients) {
		return 0, fmt.Errorf("%w: got %d features, model expects %d",
			ErrDimensionMismatch, len(scaled), len(m.Coefficients))
	}
	z := floats.Dot(m.Coefficients, scaled) + m.Intercept
	return sigmoid(z), nil
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
