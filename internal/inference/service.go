// Package inference wraps the pre-trained hiring classifier and its fitted
// feature scaler. Both are loaded once at startup and treated as read-only
// for the process lifetime.
package inference

import (
	"fmt"

	"github.com/smarthire/backend/pkg/models"
)

// Service runs scaled inference. Stateless per call.
type Service struct {
	model  *Model
	scaler *Scaler
}

// NewService pairs a loaded model and scaler, rejecting mismatched schemas.
func NewService(model *Model, scaler *Scaler) (*Service, error) {
	if len(model.Coefficients) != len(scaler.Mean) {
		return nil, fmt.Errorf("%w: model has %d coefficients, scaler has %d parameters",
			ErrInvalidModel, len(model.Coefficients), len(scaler.Mean))
	}
	return &Service{model: model, scaler: scaler}, nil
}

// Predict standardizes vector and returns the predicted label and the
// probability of the positive (hired) class. Deterministic for a given vector.
func (s *Service) Predict(vector []float64) (int, float64, error) {
	scaled, err := s.scaler.Transform(vector)
	if err != nil {
		return 0, 0, err
	}

	probability, err := s.model.PositiveProbability(scaled)
	if err != nil {
		return 0, 0, err
	}

	label := models.LabelNotHired
	if probability > s.model.Threshold {
		label = models.LabelHired
	}
	return label, probability, nil
}
