package inference

import (
	"encoding/json"
	"fmt"
	"os"
)

// Scaler standardizes raw feature vectors with the mean/scale parameters
// fitted at training time. Parameters are fixed at load and never recomputed.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// LoadScaler reads fitted scaler parameters from a JSON file.
func LoadScaler(path string) (*Scaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scaler file: %w", err)
	}

	var s Scaler
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scaler file: %w", err)
	}

	if len(s.Mean) == 0 || len(s.Mean) != len(s.Scale) {
		return nil, fmt.Errorf("%w: mean has %d entries, scale has %d",
			ErrInvalidModel, len(s.Mean), len(s.Scale))
	}
	for i, sc := range s.Scale {
		if sc == 0 {
			return nil, fmt.Errorf("%w: zero scale at index %d", ErrInvalidModel, i)
		}
	}
	return &s, nil
}

// Transform returns the standardized copy of vector. The input is not mutated.
func (s *Scaler) Transform(vector []float64) ([]float64, error) {
	if len(vector) != len(s.Mean) {
		return nil, fmt.Errorf("%w: got %d features, scaler expects %d",
			ErrDimensionMismatch, len(vector), len(s.Mean))
	}

	scaled := make([]float64, len(vector))
	for i, v := range vector {
		scaled[i] = (v - s.Mean[i]) / s.Scale[i]
	}
	return scaled, nil
}
