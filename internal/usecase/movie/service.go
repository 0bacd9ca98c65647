package movie

import (
	"context"

	domainMovie "moviebag/internal/domain/movie"
	"moviebag/internal/logger"
	appErrors "moviebag/pkg/errors"
	"moviebag/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements the movie catalog use cases
type Service struct {
	movieRepo domainMovie.Repository
}

// NewService creates a new movie service
func NewService(movieRepo domainMovie.Repository) *Service {
	return &Service{movieRepo: movieRepo}
}

func (s *Service) List(ctx context.Context) ([]*MovieResponse, error) {
	movies, err := s.movieRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*MovieResponse, 0, len(movies))
	for _, m := range movies {
		responses = append(responses, ToMovieResponse(m))
	}

	return responses, nil
}

func (s *Service) Get(ctx context.Context, movieID uuid.UUID) (*MovieResponse, error) {
	m, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	return ToMovieResponse(m), nil
}

// Create persists a new movie on behalf of the authenticated user.
func (s *Service) Create(ctx context.Context, addedBy uuid.UUID, req *CreateMovieRequest) (uuid.UUID, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return uuid.Nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	m := &domainMovie.Movie{
		Name:    req.Name,
		Casts:   req.Casts,
		Genres:  req.Genres,
		AddedBy: addedBy,
	}

	if err := s.movieRepo.Create(ctx, m); err != nil {
		return uuid.Nil, err
	}

	logger.Info("Movie created",
		zap.String("movie_id", m.ID.String()),
		zap.String("added_by", addedBy.String()),
		zap.String("event", "movie_created"),
	)

	return m.ID, nil
}
