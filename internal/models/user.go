package models

import (
	"time"

	"github.com/google/uuid"
)

// User mirrors the users table. Rows are upserted from the auth
// provider's identity on every trip generation, never edited directly.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
