package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-graph/internal/data/entity"
	"movie-graph/internal/data/repository"
	"movie-graph/internal/dto/request"

	"go.uber.org/zap"
)

type DirectorService interface {
	GetDirector(ctx context.Context, id string) (*entity.Director, error)
	GetDirectors(ctx context.Context) ([]*entity.Director, error)
	GetDirectorOfMovie(ctx context.Context, movie *entity.Movie) (*entity.Director, error)
	CreateDirector(ctx context.Context, req *request.AddDirectorRequest) (*entity.Director, error)
	UpdateDirector(ctx context.Context, req *request.UpdateDirectorRequest) (*entity.Director, error)
	// DeleteDirector leaves movies that reference the director untouched.
	DeleteDirector(ctx context.Context, id string) (*entity.Director, error)
}

type directorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDirectorService(repo *repository.Repository, log *zap.Logger) DirectorService {
	return &directorService{
		repo: repo,
		log:  log.With(zap.String("service", "director")),
	}
}

func (s *directorService) GetDirector(ctx context.Context, id string) (*entity.Director, error) {
	if err := validate(&request.IDRequest{ID: id}); err != nil {
		return nil, err
	}

	director, err := s.repo.Director.FindByID(ctx, id)
	if err != nil {
		if err = asInvalidID(err, "id"); IsValidationError(err) {
			s.log.Warn("Invalid director ID format", zap.String("director_id", id))
			return nil, err
		}
		return nil, fmt.Errorf("get director by id: %w", err)
	}

	return director, nil
}

func (s *directorService) GetDirectors(ctx context.Context) ([]*entity.Director, error) {
	directors, err := s.repo.Director.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get directors: %w", err)
	}

	s.log.Debug("Directors retrieved", zap.Int("count", len(directors)))
	return directors, nil
}

// GetDirectorOfMovie resolves Movie.director. An unset, malformed or
// dangling directorId yields a nil director, never an error.
func (s *directorService) GetDirectorOfMovie(ctx context.Context, movie *entity.Movie) (*entity.Director, error) {
	if movie == nil || movie.DirectorID == nil {
		return nil, nil
	}

	director, err := s.repo.Director.FindByID(ctx, *movie.DirectorID)
	if errors.Is(err, repository.ErrInvalidID) {
		s.log.Debug("Movie references a malformed director ID",
			zap.String("movie_id", movie.ID),
			zap.String("director_id", *movie.DirectorID),
		)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get director of movie: %w", err)
	}

	return director, nil
}

func (s *directorService) CreateDirector(ctx context.Context, req *request.AddDirectorRequest) (*entity.Director, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create director validation failed", zap.Error(err))
		return nil, err
	}

	director, err := s.repo.Director.Create(ctx, req.Fields())
	if err != nil {
		return nil, fmt.Errorf("create director: %w", err)
	}

	s.log.Info("Director created",
		zap.String("director_id", director.ID),
		zap.String("name", director.Name),
	)

	return director, nil
}

func (s *directorService) UpdateDirector(ctx context.Context, req *request.UpdateDirectorRequest) (*entity.Director, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update director validation failed", zap.Error(err))
		return nil, err
	}

	director, err := s.repo.Director.Update(ctx, req.ID, req.Fields())
	if err != nil {
		if err = asInvalidID(err, "id"); IsValidationError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("update director: %w", err)
	}

	if director == nil {
		s.log.Info("Director to update not found", zap.String("director_id", req.ID))
		return nil, nil
	}

	s.log.Info("Director updated",
		zap.String("director_id", director.ID),
		zap.String("name", director.Name),
	)

	return director, nil
}

func (s *directorService) DeleteDirector(ctx context.Context, id string) (*entity.Director, error) {
	if err := validate(&request.IDRequest{ID: id}); err != nil {
		return nil, err
	}

	director, err := s.repo.Director.Delete(ctx, id)
	if err != nil {
		if err = asInvalidID(err, "id"); IsValidationError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("delete director: %w", err)
	}

	if director != nil {
		s.log.Info("Director deleted",
			zap.String("director_id", id),
			zap.String("name", director.Name),
		)
	}

	return director, nil
}
