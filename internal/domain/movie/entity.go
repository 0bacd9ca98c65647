package movie

import (
	"time"

	"github.com/google/uuid"
)

// Movie represents a catalog entry in the domain
type Movie struct {
	ID     uuid.UUID
	Name   string
	Casts  []string
	Genres []string

	// AddedBy is the creating user and never changes after creation.
	AddedBy uuid.UUID

	CreatedAt time.Time
}
