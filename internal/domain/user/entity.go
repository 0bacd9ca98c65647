package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents a credential record in the domain. The reset-token
// fields live on the user row so that issuing a new token always
// replaces the previous one and consuming a token is a single
// conditional update.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string

	ResetTokenHash      *string
	ResetTokenExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
