package movie

import (
	"time"

	domainMovie "moviebag/internal/domain/movie"

	"github.com/google/uuid"
)

type CreateMovieRequest struct {
	Name   string   `json:"name" validate:"required,min=1,max=255"`
	Casts  []string `json:"casts"`
	Genres []string `json:"genres"`
}

type MovieResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Casts     []string  `json:"casts"`
	Genres    []string  `json:"genres"`
	AddedBy   uuid.UUID `json:"added_by"`
	CreatedAt time.Time `json:"created_at"`
}

func ToMovieResponse(m *domainMovie.Movie) *MovieResponse {
	if m == nil {
		return nil
	}
	return &MovieResponse{
		ID:        m.ID,
		Name:      m.Name,
		Casts:     emptyIfNil(m.Casts),
		Genres:    emptyIfNil(m.Genres),
		AddedBy:   m.AddedBy,
		CreatedAt: m.CreatedAt,
	}
}

// emptyIfNil keeps list fields serializing as [] rather than null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
