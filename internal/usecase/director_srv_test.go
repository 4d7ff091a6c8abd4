package usecase

import (
	"context"
	"testing"

	"movie-graph/internal/data/entity"
	"movie-graph/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectorService_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	created := addDirector(t, s, "Director 1", 11)

	got, err := s.Director.GetDirector(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, &entity.Director{ID: created.ID, Name: "Director 1", Age: 11}, got)
}

func TestDirectorService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	_, err := s.Director.CreateDirector(ctx, &request.AddDirectorRequest{Name: ptr("")})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, map[string]string{
		"name": "Minimum is 1",
		"age":  "This field is required",
	}, ve.Fields)
	assert.Equal(t, "validation failed: age: This field is required; name: Minimum is 1", err.Error())

	directors, err := s.Director.GetDirectors(ctx)
	require.NoError(t, err)
	assert.Empty(t, directors)
}

func TestDirectorService_GetDirectors(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	empty, err := s.Director.GetDirectors(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	a := addDirector(t, s, "A", 1)
	b := addDirector(t, s, "B", 2)

	all, err := s.Director.GetDirectors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Director{a, b}, all)
}

func TestDirectorService_GetDirectorOfMovie(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	tests := []struct {
		name  string
		movie *entity.Movie
	}{
		{name: "nil movie", movie: nil},
		{name: "no director id", movie: &entity.Movie{ID: "m"}},
		{name: "malformed director id", movie: &entity.Movie{ID: "m", DirectorID: ptr("garbage")}},
		{name: "dangling director id", movie: &entity.Movie{ID: "m", DirectorID: ptr(uuid.NewString())}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			director, err := s.Director.GetDirectorOfMovie(ctx, tt.movie)
			require.NoError(t, err)
			assert.Nil(t, director)
		})
	}
}

func TestDirectorService_UpdateDirector(t *testing.T) {
	ctx := context.Background()
	s := newTestService()
	created := addDirector(t, s, "Director 1", 11)

	updated, err := s.Director.UpdateDirector(ctx, &request.UpdateDirectorRequest{
		ID:   created.ID,
		Name: ptr("New"),
		Age:  ptr(99),
	})
	require.NoError(t, err)
	assert.Equal(t, &entity.Director{ID: created.ID, Name: "New", Age: 99}, updated)

	missing, err := s.Director.UpdateDirector(ctx, &request.UpdateDirectorRequest{
		ID:   uuid.NewString(),
		Name: ptr("New"),
		Age:  ptr(99),
	})
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = s.Director.UpdateDirector(ctx, &request.UpdateDirectorRequest{
		ID:   created.ID,
		Name: ptr("Only name"),
	})
	requireValidationField(t, err, "age")
}

func TestDirectorService_DeleteDoesNotCascade(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	director := addDirector(t, s, "Director 1", 11)
	movie := addMovie(t, s, "Film 1", &director.ID)

	deleted, err := s.Director.DeleteDirector(ctx, director.ID)
	require.NoError(t, err)
	assert.Equal(t, director, deleted)

	got, err := s.Movie.GetMovie(ctx, movie.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.DirectorID)
	assert.Equal(t, director.ID, *got.DirectorID)

	orphaned, err := s.Director.GetDirectorOfMovie(ctx, got)
	require.NoError(t, err)
	assert.Nil(t, orphaned)

	_, err = s.Director.DeleteDirector(ctx, "x")
	requireValidationField(t, err, "id")
}

func TestDirectorService_AgeOutsideInt32(t *testing.T) {
	ctx := context.Background()
	s := newTestService()
	created := addDirector(t, s, "Director", 40)

	_, err := s.Director.CreateDirector(ctx, &request.AddDirectorRequest{Name: ptr("D"), Age: ptr(1 << 31)})
	requireValidationField(t, err, "age")

	_, err = s.Director.UpdateDirector(ctx, &request.UpdateDirectorRequest{ID: created.ID, Name: ptr("D"), Age: ptr(-(1 << 31) - 1)})
	requireValidationField(t, err, "age")

	got, err := s.Director.GetDirector(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, got.Age)
}
