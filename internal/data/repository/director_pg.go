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

const directorColumns = `id::text, name, age`

type directorPostgresRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDirectorPostgresRepository(db database.PgxIface, log *zap.Logger) DirectorRepository {
	return &directorPostgresRepository{
		db:  db,
		log: log.With(zap.String("repository", "director"), zap.String("driver", "postgres")),
	}
}

func scanDirector(row pgx.Row) (*entity.Director, error) {
	var director entity.Director
	if err := row.Scan(&director.ID, &director.Name, &director.Age); err != nil {
		return nil, err
	}
	return &director, nil
}

func (r *directorPostgresRepository) Create(ctx context.Context, fields entity.DirectorFields) (*entity.Director, error) {
	query := `
		INSERT INTO directors (id, name, age)
		VALUES ($1, $2, $3)
		RETURNING ` + directorColumns

	director, err := scanDirector(r.db.QueryRow(ctx, query, newRowID(), fields.Name, fields.Age))
	if err != nil {
		r.log.Error("Failed to create director",
			zap.Error(err),
			zap.String("name", fields.Name),
		)
		return nil, fmt.Errorf("failed to create director: %w", err)
	}

	return director, nil
}

func (r *directorPostgresRepository) FindByID(ctx context.Context, id string) (*entity.Director, error) {
	directorID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	query := `SELECT ` + directorColumns + ` FROM directors WHERE id = $1`

	director, err := scanDirector(r.db.QueryRow(ctx, query, directorID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find director by ID",
			zap.Error(err),
			zap.String("director_id", id),
		)
		return nil, fmt.Errorf("failed to find director: %w", err)
	}

	return director, nil
}

func (r *directorPostgresRepository) FindAll(ctx context.Context) ([]*entity.Director, error) {
	query := `SELECT ` + directorColumns + ` FROM directors ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all directors", zap.Error(err))
		return nil, fmt.Errorf("failed to find directors: %w", err)
	}
	defer rows.Close()

	directors := make([]*entity.Director, 0)
	for rows.Next() {
		director, err := scanDirector(rows)
		if err != nil {
			r.log.Error("Failed to scan director row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan director: %w", err)
		}
		directors = append(directors, director)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return directors, nil
}

func (r *directorPostgresRepository) Update(ctx context.Context, id string, fields entity.DirectorFields) (*entity.Director, error) {
	directorID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	query := `
		UPDATE directors
		SET name = $2, age = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + directorColumns

	director, err := scanDirector(r.db.QueryRow(ctx, query, directorID, fields.Name, fields.Age))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update director",
			zap.Error(err),
			zap.String("director_id", id),
		)
		return nil, fmt.Errorf("failed to update director: %w", err)
	}

	return director, nil
}

func (r *directorPostgresRepository) Delete(ctx context.Context, id string) (*entity.Director, error) {
	directorID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	query := `DELETE FROM directors WHERE id = $1 RETURNING ` + directorColumns

	director, err := scanDirector(r.db.QueryRow(ctx, query, directorID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to delete director",
			zap.Error(err),
			zap.String("director_id", id),
		)
		return nil, fmt.Errorf("failed to delete director: %w", err)
	}

	r.log.Info("Director deleted", zap.String("director_id", id))
	return director, nil
}
