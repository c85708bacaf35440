package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactRecord is a stored contact-form submission. Unrelated to predictions;
// write-only from the API's point of view.
type ContactRecord struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Email     string    `db:"email"      json:"email"`
	Message   string    `db:"message"    json:"message"`
	CreatedAt time.Time `db:"created_at" json:"timestamp"`
}
