package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/smarthire/backend/pkg/models"
)

var ErrNotFound = errors.New("resource not found")

// Store is the data access interface. All database operations go through here.
// Both record types are append-only: nothing in the system updates or deletes.
type Store interface {
	Ping(ctx context.Context) error

	SavePrediction(ctx context.Context, input map[string]any, prediction int, probability float64, ts time.Time) (uuid.UUID, error)
	ListPredictions(ctx context.Context) ([]*models.PredictionRecord, error)
	GetPrediction(ctx context.Context, id uuid.UUID) (*models.PredictionRecord, error)

	SaveContact(ctx context.Context, name, email, message string, ts time.Time) error
}
