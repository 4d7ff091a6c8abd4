package repository

import (
	"context"

	"movie-graph/internal/data/entity"
)

// MovieRepository is the movies collection. Lookups that match nothing
// return a nil movie and a nil error.
type MovieRepository interface {
	Create(ctx context.Context, fields entity.MovieFields) (*entity.Movie, error)
	FindByID(ctx context.Context, id string) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	FindByDirectorID(ctx context.Context, directorID string) ([]*entity.Movie, error)

	// Update replaces every mutable field and returns the stored result.
	Update(ctx context.Context, id string, fields entity.MovieFields) (*entity.Movie, error)
	// Delete removes the movie and returns it as it was before removal.
	Delete(ctx context.Context, id string) (*entity.Movie, error)
}
