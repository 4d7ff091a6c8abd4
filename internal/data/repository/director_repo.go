package repository

import (
	"context"

	"movie-graph/internal/data/entity"
)

// DirectorRepository is the directors collection. Lookups that match
// nothing return a nil director and a nil error.
type DirectorRepository interface {
	Create(ctx context.Context, fields entity.DirectorFields) (*entity.Director, error)
	FindByID(ctx context.Context, id string) (*entity.Director, error)
	FindAll(ctx context.Context) ([]*entity.Director, error)
	Update(ctx context.Context, id string, fields entity.DirectorFields) (*entity.Director, error)
	Delete(ctx context.Context, id string) (*entity.Director, error)
}
