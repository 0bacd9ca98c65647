package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MovieModel represents the database model for Movie
type MovieModel struct {
	ID      uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name    string         `gorm:"type:varchar(255);not null"`
	Casts   pq.StringArray `gorm:"type:text[]"`
	Genres  pq.StringArray `gorm:"type:text[]"`
	AddedBy uuid.UUID      `gorm:"type:uuid;not null;index"`

	CreatedAt time.Time `gorm:"not null"`
}

func (MovieModel) TableName() string {
	return "movies"
}
