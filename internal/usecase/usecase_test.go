package usecase

import (
	"context"
	"errors"
	"testing"

	"movie-graph/internal/data/entity"
	"movie-graph/internal/data/repository"
	"movie-graph/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() *Service {
	return NewService(repository.NewMemoryRepository(zap.NewNop()), zap.NewNop())
}

func ptr[T any](v T) *T { return &v }

func addDirector(t *testing.T, s *Service, name string, age int) *entity.Director {
	t.Helper()
	director, err := s.Director.CreateDirector(context.Background(), &request.AddDirectorRequest{
		Name: ptr(name),
		Age:  ptr(age),
	})
	require.NoError(t, err)
	require.NotNil(t, director)
	return director
}

func addMovie(t *testing.T, s *Service, name string, directorID *string) *entity.Movie {
	t.Helper()
	movie, err := s.Movie.CreateMovie(context.Background(), &request.AddMovieRequest{
		Name:       ptr(name),
		Genre:      ptr("Genre"),
		Watched:    ptr(false),
		DirectorID: directorID,
	})
	require.NoError(t, err)
	require.NotNil(t, movie)
	return movie
}

func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
	assert.Contains(t, ve.Fields, field)
}
