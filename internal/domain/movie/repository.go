package movie

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for movie store operations
type Repository interface {
	Create(ctx context.Context, m *Movie) error
	GetByID(ctx context.Context, movieID uuid.UUID) (*Movie, error)
	GetAll(ctx context.Context) ([]*Movie, error)
}
