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

func TestMovieService_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	created, err := s.Movie.CreateMovie(ctx, &request.AddMovieRequest{
		Name:    ptr("Film 1"),
		Genre:   ptr("Genre 1"),
		Watched: ptr(true),
		Rate:    ptr(8),
	})
	require.NoError(t, err)

	got, err := s.Movie.GetMovie(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Film 1", got.Name)
	assert.Equal(t, "Genre 1", got.Genre)
	assert.True(t, got.Watched)
	require.NotNil(t, got.Rate)
	assert.Equal(t, 8, *got.Rate)
	assert.Nil(t, got.DirectorID)
}

func TestMovieService_CreateKeepsZeroValues(t *testing.T) {
	s := newTestService()

	movie, err := s.Movie.CreateMovie(context.Background(), &request.AddMovieRequest{
		Name:    ptr("Film"),
		Genre:   ptr("Genre"),
		Watched: ptr(false),
		Rate:    ptr(0),
	})
	require.NoError(t, err)
	assert.False(t, movie.Watched)
	require.NotNil(t, movie.Rate)
	assert.Equal(t, 0, *movie.Rate)
}

func TestMovieService_CreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   *request.AddMovieRequest
		field string
	}{
		{
			name:  "missing name",
			req:   &request.AddMovieRequest{Genre: ptr("g"), Watched: ptr(true)},
			field: "name",
		},
		{
			name:  "empty genre",
			req:   &request.AddMovieRequest{Name: ptr("n"), Genre: ptr(""), Watched: ptr(true)},
			field: "genre",
		},
		{
			name:  "missing watched",
			req:   &request.AddMovieRequest{Name: ptr("n"), Genre: ptr("g")},
			field: "watched",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService()

			movie, err := s.Movie.CreateMovie(context.Background(), tt.req)
			assert.Nil(t, movie)
			requireValidationField(t, err, tt.field)

			movies, err := s.Movie.GetMovies(context.Background())
			require.NoError(t, err)
			assert.Empty(t, movies)
		})
	}
}

func TestMovieService_GetMovie(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	t.Run("unknown id", func(t *testing.T) {
		movie, err := s.Movie.GetMovie(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, movie)
	})

	t.Run("malformed id", func(t *testing.T) {
		movie, err := s.Movie.GetMovie(ctx, "not-an-id")
		assert.Nil(t, movie)
		requireValidationField(t, err, "id")
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := s.Movie.GetMovie(ctx, "")
		requireValidationField(t, err, "id")
	})
}

func TestMovieService_GetMoviesByDirector(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	director := addDirector(t, s, "Director", 50)
	other := addDirector(t, s, "Other", 60)

	first := addMovie(t, s, "First", &director.ID)
	addMovie(t, s, "Unrelated", &other.ID)
	addMovie(t, s, "Orphan", nil)
	second := addMovie(t, s, "Second", &director.ID)

	movies, err := s.Movie.GetMoviesByDirector(ctx, director)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, first.ID, movies[0].ID)
	assert.Equal(t, second.ID, movies[1].ID)

	for _, m := range movies {
		got, err := s.Director.GetDirectorOfMovie(ctx, m)
		require.NoError(t, err)
		assert.Equal(t, director, got)
	}

	lonely := addDirector(t, s, "Lonely", 30)
	none, err := s.Movie.GetMoviesByDirector(ctx, lonely)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	none, err = s.Movie.GetMoviesByDirector(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMovieService_UpdateMovie(t *testing.T) {
	ctx := context.Background()
	s := newTestService()
	director := addDirector(t, s, "Director", 40)

	created, err := s.Movie.CreateMovie(ctx, &request.AddMovieRequest{
		Name:       ptr("Old"),
		Genre:      ptr("Drama"),
		Watched:    ptr(false),
		Rate:       ptr(4),
		DirectorID: &director.ID,
	})
	require.NoError(t, err)

	updated, err := s.Movie.UpdateMovie(ctx, &request.UpdateMovieRequest{
		ID:      created.ID,
		Name:    ptr("New"),
		Genre:   ptr("Comedy"),
		Watched: ptr(true),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, &entity.Movie{ID: created.ID, Name: "New", Genre: "Comedy", Watched: true}, updated)

	got, err := s.Movie.GetMovie(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestMovieService_UpdateMovieUnknownOrInvalid(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	movie, err := s.Movie.UpdateMovie(ctx, &request.UpdateMovieRequest{
		ID:      uuid.NewString(),
		Name:    ptr("n"),
		Genre:   ptr("g"),
		Watched: ptr(true),
	})
	require.NoError(t, err)
	assert.Nil(t, movie)

	_, err = s.Movie.UpdateMovie(ctx, &request.UpdateMovieRequest{
		ID:      "bogus",
		Name:    ptr("n"),
		Genre:   ptr("g"),
		Watched: ptr(true),
	})
	requireValidationField(t, err, "id")

	_, err = s.Movie.UpdateMovie(ctx, &request.UpdateMovieRequest{
		ID:    uuid.NewString(),
		Name:  ptr("n"),
		Genre: ptr("g"),
	})
	requireValidationField(t, err, "watched")
}

func TestMovieService_DeleteMovie(t *testing.T) {
	ctx := context.Background()
	s := newTestService()
	movie := addMovie(t, s, "Doomed", nil)

	deleted, err := s.Movie.DeleteMovie(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, movie, deleted)

	got, err := s.Movie.GetMovie(ctx, movie.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	again, err := s.Movie.DeleteMovie(ctx, movie.ID)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestMovieService_RateOutsideInt32(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	_, err := s.Movie.CreateMovie(ctx, &request.AddMovieRequest{
		Name:    ptr("Film"),
		Genre:   ptr("Genre"),
		Watched: ptr(true),
		Rate:    ptr(1 << 31),
	})
	requireValidationField(t, err, "rate")

	movies, err := s.Movie.GetMovies(ctx)
	require.NoError(t, err)
	assert.Empty(t, movies)
}
