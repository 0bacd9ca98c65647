package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for credential store operations.
type Repository interface {
	// Create persists a new user. Email uniqueness is enforced by the
	// store itself; a duplicate returns ErrEmailTaken.
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)

	// SetResetToken stores the hash and expiry of a freshly issued reset
	// token, overwriting any previously active one.
	SetResetToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error

	// ConsumePasswordReset atomically replaces the password hash of the
	// user whose unexpired reset token matches tokenHash and clears the
	// reset-token fields in the same statement. Returns
	// ErrInvalidResetToken when no such user exists.
	ConsumePasswordReset(ctx context.Context, tokenHash, passwordHash string, now time.Time) error
}
