// Package handler contains the HTTP handlers for the Smart Hire API. Each
// handler depends on narrow interfaces so it can be unit-tested with
// substitute stores and models.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/smarthire/backend/internal/api/response"
	"github.com/smarthire/backend/internal/features"
)

// Predictor runs scaled inference over a built feature vector.
type Predictor interface {
	Predict(vector []float64) (label int, probability float64, err error)
}

// PredictionSaver persists one prediction request/response pair.
type PredictionSaver interface {
	SavePrediction(ctx context.Context, input map[string]any, prediction int, probability float64, ts time.Time) (uuid.UUID, error)
}

type predictResponse struct {
	Prediction  int     `json:"prediction"`
	Probability float64 `json:"probability"`
}

// NewPredictHandler returns the handler for POST /api/predict: build vector,
// infer, persist, respond. Any failure in the pipeline maps to 400 with the
// raw error message; nothing is persisted on failure.
func NewPredictHandler(predictor Predictor, saver PredictionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			response.Error(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		vector, err := features.Build(payload)
		if err != nil {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		label, probability, err := predictor.Predict(vector)
		if err != nil {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		if _, err := saver.SavePrediction(r.Context(), payload, label, probability, time.Now().UTC()); err != nil {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		response.JSON(w, predictResponse{
			Prediction:  label,
			Probability: probability,
		})
	}
}
