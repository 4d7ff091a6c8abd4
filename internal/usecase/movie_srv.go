package usecase

import (
	"context"
	"fmt"

	"movie-graph/internal/data/entity"
	"movie-graph/internal/data/repository"
	"movie-graph/internal/dto/request"

	"go.uber.org/zap"
)

// MovieService exposes the movie queries and mutations. A nil movie with a
// nil error means no record matched.
type MovieService interface {
	GetMovie(ctx context.Context, id string) (*entity.Movie, error)
	GetMovies(ctx context.Context) ([]*entity.Movie, error)
	GetMoviesByDirector(ctx context.Context, director *entity.Director) ([]*entity.Movie, error)
	CreateMovie(ctx context.Context, req *request.AddMovieRequest) (*entity.Movie, error)
	UpdateMovie(ctx context.Context, req *request.UpdateMovieRequest) (*entity.Movie, error)
	DeleteMovie(ctx context.Context, id string) (*entity.Movie, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovie(ctx context.Context, id string) (*entity.Movie, error) {
	if err := validate(&request.IDRequest{ID: id}); err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		if err = asInvalidID(err, "id"); IsValidationError(err) {
			s.log.Warn("Invalid movie ID format", zap.String("movie_id", id))
			return nil, err
		}
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	return movie, nil
}

func (s *movieService) GetMovies(ctx context.Context) ([]*entity.Movie, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}

	s.log.Debug("Movies retrieved", zap.Int("count", len(movies)))
	return movies, nil
}

// GetMoviesByDirector resolves Director.movies: every movie whose
// directorId equals the director's id, in storage order.
func (s *movieService) GetMoviesByDirector(ctx context.Context, director *entity.Director) ([]*entity.Movie, error) {
	if director == nil {
		return []*entity.Movie{}, nil
	}

	movies, err := s.repo.Movie.FindByDirectorID(ctx, director.ID)
	if err != nil {
		return nil, fmt.Errorf("get movies by director: %w", err)
	}

	return movies, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.AddMovieRequest) (*entity.Movie, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create movie validation failed", zap.Error(err))
		return nil, err
	}

	movie, err := s.repo.Movie.Create(ctx, req.Fields())
	if err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID),
		zap.String("name", movie.Name),
	)

	return movie, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, req *request.UpdateMovieRequest) (*entity.Movie, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update movie validation failed", zap.Error(err))
		return nil, err
	}

	movie, err := s.repo.Movie.Update(ctx, req.ID, req.Fields())
	if err != nil {
		if err = asInvalidID(err, "id"); IsValidationError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("update movie: %w", err)
	}

	if movie == nil {
		s.log.Info("Movie to update not found", zap.String("movie_id", req.ID))
		return nil, nil
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movie.ID),
		zap.String("name", movie.Name),
	)

	return movie, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id string) (*entity.Movie, error) {
	if err := validate(&request.IDRequest{ID: id}); err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.Delete(ctx, id)
	if err != nil {
		if err = asInvalidID(err, "id"); IsValidationError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("delete movie: %w", err)
	}

	if movie != nil {
		s.log.Info("Movie deleted",
			zap.String("movie_id", id),
			zap.String("name", movie.Name),
		)
	}

	return movie, nil
}
