package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smarthire/backend/pkg/models"
)

// PostgresStore implements the Store interface using pgx/v5.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Ping checks database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// --- Predictions ---

// SavePrediction appends one prediction record and returns its generated id.
func (s *PostgresStore) SavePrediction(ctx context.Context, input map[string]any, prediction int, probability float64, ts time.Time) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO predictions (id, input, prediction, probability, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, input, prediction, probability, ts.UTC())
	if err != nil {
		return uuid.Nil, fmt.Errorf("save prediction: %w", err)
	}
	return id, nil
}

// ListPredictions returns every prediction record, most recent first.
func (s *PostgresStore) ListPredictions(ctx context.Context) ([]*models.PredictionRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, input, prediction, probability, created_at
		 FROM predictions ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	defer rows.Close()

	var records []*models.PredictionRecord
	for rows.Next() {
		var r models.PredictionRecord
		if err := rows.Scan(&r.ID, &r.Input, &r.Prediction, &r.Probability, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		records = append(records, &r)
	}
	return records, rows.Err()
}

// GetPrediction fetches one record by id, returning ErrNotFound when absent.
func (s *PostgresStore) GetPrediction(ctx context.Context, id uuid.UUID) (*models.PredictionRecord, error) {
	var r models.PredictionRecord
	err := s.pool.QueryRow(ctx,
		`SELECT id, input, prediction, probability, created_at
		 FROM predictions WHERE id = $1`, id,
	).Scan(&r.ID, &r.Input, &r.Prediction, &r.Probability, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get prediction: %w", err)
	}
	return &r, nil
}

// --- Contacts ---

// SaveContact appends one contact-form submission.
func (s *PostgresStore) SaveContact(ctx context.Context, name, email, message string, ts time.Time) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO contacts (id, name, email, message, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), name, email, message, ts.UTC())
	if err != nil {
		return fmt.Errorf("save contact: %w", err)
	}
	return nil
}
