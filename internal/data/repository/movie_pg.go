package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-graph/internal/data/entity"
	"movie-graph/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const movieColumns = `id::text, name, genre, watched, rate, director_id`

// newRowID returns a UUIDv7. Its leading timestamp and per-process counter
// make ORDER BY id match insertion order.
func newRowID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

type moviePostgresRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMoviePostgresRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &moviePostgresRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie"), zap.String("driver", "postgres")),
	}
}

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Name,
		&movie.Genre,
		&movie.Watched,
		&movie.Rate,
		&movie.DirectorID,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *moviePostgresRepository) Create(ctx context.Context, fields entity.MovieFields) (*entity.Movie, error) {
	query := `
		INSERT INTO movies (id, name, genre, watched, rate, director_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + movieColumns

	movie, err := scanMovie(r.db.QueryRow(ctx, query,
		newRowID(),
		fields.Name,
		fields.Genre,
		fields.Watched,
		fields.Rate,
		fields.DirectorID,
	))
	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("name", fields.Name),
		)
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	return movie, nil
}

func (r *moviePostgresRepository) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	movieID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, movieID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return movie, nil
}

func (r *moviePostgresRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY id`
	return r.query(ctx, query)
}

func (r *moviePostgresRepository) FindByDirectorID(ctx context.Context, directorID string) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE director_id = $1 ORDER BY id`
	return r.query(ctx, query, directorID)
}

func (r *moviePostgresRepository) query(ctx context.Context, query string, args ...any) ([]*entity.Movie, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find movies", zap.Error(err))
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	defer rows.Close()

	movies := make([]*entity.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))

	return movies, nil
}

func (r *moviePostgresRepository) Update(ctx context.Context, id string, fields entity.MovieFields) (*entity.Movie, error) {
	movieID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	query := `
		UPDATE movies
		SET name = $2, genre = $3, watched = $4, rate = $5, director_id = $6,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + movieColumns

	movie, err := scanMovie(r.db.QueryRow(ctx, query,
		movieID,
		fields.Name,
		fields.Genre,
		fields.Watched,
		fields.Rate,
		fields.DirectorID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	return movie, nil
}

func (r *moviePostgresRepository) Delete(ctx context.Context, id string) (*entity.Movie, error) {
	movieID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	query := `DELETE FROM movies WHERE id = $1 RETURNING ` + movieColumns

	movie, err := scanMovie(r.db.QueryRow(ctx, query, movieID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return nil, fmt.Errorf("failed to delete movie: %w", err)
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id))
	return movie, nil
}
