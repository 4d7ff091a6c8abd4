package usecase

import (
	"movie-graph/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie    MovieService
	Director DirectorService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie:    NewMovieService(repo, log),
		Director: NewDirectorService(repo, log),
	}
}
