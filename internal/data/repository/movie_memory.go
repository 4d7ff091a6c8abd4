package repository

import (
	"context"
	"fmt"
	"sync"

	"movie-graph/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// movieMemoryRepository keeps movies in process memory. The lock makes
// every call atomic, standing in for the per-record guarantees of a real store.
type movieMemoryRepository struct {
	mu     sync.RWMutex
	order  []string
	movies map[string]entity.Movie
	log    *zap.Logger
}

func NewMovieMemoryRepository(log *zap.Logger) MovieRepository {
	return &movieMemoryRepository{
		movies: make(map[string]entity.Movie),
		log:    log.With(zap.String("repository", "movie"), zap.String("driver", "memory")),
	}
}

func (r *movieMemoryRepository) Create(ctx context.Context, fields entity.MovieFields) (*entity.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	movie := fields.ToMovie(uuid.NewString())
	r.movies[movie.ID] = cloneMovie(movie)
	r.order = append(r.order, movie.ID)

	r.log.Debug("Movie created", zap.String("movie_id", movie.ID))
	return movie, nil
}

func (r *movieMemoryRepository) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, ok := r.movies[id]
	if !ok {
		return nil, nil
	}
	found := cloneMovie(&movie)
	return &found, nil
}

func (r *movieMemoryRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	return r.filter(func(*entity.Movie) bool { return true }), nil
}

func (r *movieMemoryRepository) FindByDirectorID(ctx context.Context, directorID string) ([]*entity.Movie, error) {
	return r.filter(func(m *entity.Movie) bool {
		return m.DirectorID != nil && *m.DirectorID == directorID
	}), nil
}

func (r *movieMemoryRepository) filter(keep func(*entity.Movie) bool) []*entity.Movie {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]*entity.Movie, 0)
	for _, id := range r.order {
		stored := r.movies[id]
		movie := cloneMovie(&stored)
		if keep(&movie) {
			movies = append(movies, &movie)
		}
	}
	return movies
}

func (r *movieMemoryRepository) Update(ctx context.Context, id string, fields entity.MovieFields) (*entity.Movie, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[id]; !ok {
		return nil, nil
	}

	movie := fields.ToMovie(id)
	r.movies[id] = cloneMovie(movie)
	return movie, nil
}

func (r *movieMemoryRepository) Delete(ctx context.Context, id string) (*entity.Movie, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	movie, ok := r.movies[id]
	if !ok {
		return nil, nil
	}

	delete(r.movies, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	r.log.Debug("Movie deleted", zap.String("movie_id", id))
	return &movie, nil
}

// cloneMovie detaches the optional fields so callers cannot mutate stored state.
func cloneMovie(m *entity.Movie) entity.Movie {
	c := *m
	if m.Rate != nil {
		rate := *m.Rate
		c.Rate = &rate
	}
	if m.DirectorID != nil {
		directorID := *m.DirectorID
		c.DirectorID = &directorID
	}
	return c
}
