package models

import (
	"time"

	"github.com/google/uuid"
)

// Prediction labels produced by the hiring classifier.
const (
	LabelNotHired = 0
	LabelHired    = 1
)

// PredictionRecord is one persisted prediction request/response pair.
// Input holds the raw caller-supplied feature values, not the scaled vector.
// Records are append-only: created once, never updated or deleted.
type PredictionRecord struct {
	ID          uuid.UUID      `db:"id"          json:"id"`
	Input       map[string]any `db:"input"       json:"input"`
	Prediction  int            `db:"prediction"  json:"prediction"`
	Probability float64        `db:"probability" json:"probability"`
	CreatedAt   time.Time      `db:"created_at"  json:"timestamp"`
}
