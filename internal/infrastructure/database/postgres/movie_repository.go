package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moviebag/internal/domain/movie"
	"moviebag/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovieRepository implements the movie.Repository interface
type MovieRepository struct {
	db *DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *DB) movie.Repository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) Create(ctx context.Context, m *movie.Movie) error {
	m.ID = uuid.New()
	m.CreatedAt = time.Now()

	dbModel := toMovieModel(m)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}

	m.ID = dbModel.ID
	m.CreatedAt = dbModel.CreatedAt

	return nil
}

func (r *MovieRepository) GetByID(ctx context.Context, movieID uuid.UUID) (*movie.Movie, error) {
	var dbModel models.MovieModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", movieID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, movie.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	return toMovieEntity(&dbModel), nil
}

func (r *MovieRepository) GetAll(ctx context.Context) ([]*movie.Movie, error) {
	var dbModels []models.MovieModel
	err := r.db.DB.WithContext(ctx).Order("created_at ASC").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get movies: %w", err)
	}

	movies := make([]*movie.Movie, len(dbModels))
	for i, dbModel := range dbModels {
		movies[i] = toMovieEntity(&dbModel)
	}

	return movies, nil
}

func toMovieModel(m *movie.Movie) *models.MovieModel {
	return &models.MovieModel{
		ID:        m.ID,
		Name:      m.Name,
		Casts:     m.Casts,
		Genres:    m.Genres,
		AddedBy:   m.AddedBy,
		CreatedAt: m.CreatedAt,
	}
}

func toMovieEntity(m *models.MovieModel) *movie.Movie {
	return &movie.Movie{
		ID:        m.ID,
		Name:      m.Name,
		Casts:     m.Casts,
		Genres:    m.Genres,
		AddedBy:   m.AddedBy,
		CreatedAt: m.CreatedAt,
	}
}
