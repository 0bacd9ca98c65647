package models

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the database model for User
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`

	// SHA-256 hex of the active reset token, if any. Both fields are
	// cleared by the update that consumes the token.
	ResetTokenHash      *string    `gorm:"type:varchar(64);index"`
	ResetTokenExpiresAt *time.Time `gorm:"type:timestamptz"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
