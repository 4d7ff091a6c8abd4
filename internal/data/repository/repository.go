package repository

import (
	"context"
	"errors"

	"movie-graph/pkg/database"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

// ErrInvalidID is returned when an identifier cannot be parsed into the
// backend's key format.
var ErrInvalidID = errors.New("invalid identifier")

type Repository struct {
	Movie    MovieRepository
	Director DirectorRepository

	ping func(ctx context.Context) error
}

// Ping checks that the backing store is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if r.ping == nil {
		return nil
	}
	return r.ping(ctx)
}

func NewMongoRepository(db *mongo.Database, log *zap.Logger) *Repository {
	return &Repository{
		Movie:    NewMovieMongoRepository(db, log),
		Director: NewDirectorMongoRepository(db, log),
		ping: func(ctx context.Context) error {
			return db.Client().Ping(ctx, nil)
		},
	}
}

func NewPostgresRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:    NewMoviePostgresRepository(db, log),
		Director: NewDirectorPostgresRepository(db, log),
		ping:     db.Ping,
	}
}

func NewMemoryRepository(log *zap.Logger) *Repository {
	return &Repository{
		Movie:    NewMovieMemoryRepository(log),
		Director: NewDirectorMemoryRepository(log),
	}
}
