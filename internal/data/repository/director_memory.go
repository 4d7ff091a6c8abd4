package repository

import (
	"context"
	"fmt"
	"sync"

	"movie-graph/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type directorMemoryRepository struct {
	mu        sync.RWMutex
	order     []string
	directors map[string]entity.Director
	log       *zap.Logger
}

func NewDirectorMemoryRepository(log *zap.Logger) DirectorRepository {
	return &directorMemoryRepository{
		directors: make(map[string]entity.Director),
		log:       log.With(zap.String("repository", "director"), zap.String("driver", "memory")),
	}
}

func (r *directorMemoryRepository) Create(ctx context.Context, fields entity.DirectorFields) (*entity.Director, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	director := fields.ToDirector(uuid.NewString())
	r.directors[director.ID] = *director
	r.order = append(r.order, director.ID)

	r.log.Debug("Director created", zap.String("director_id", director.ID))
	return director, nil
}

func (r *directorMemoryRepository) FindByID(ctx context.Context, id string) (*entity.Director, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	director, ok := r.directors[id]
	if !ok {
		return nil, nil
	}
	return &director, nil
}

func (r *directorMemoryRepository) FindAll(ctx context.Context) ([]*entity.Director, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	directors := make([]*entity.Director, 0, len(r.order))
	for _, id := range r.order {
		director := r.directors[id]
		directors = append(directors, &director)
	}
	return directors, nil
}

func (r *directorMemoryRepository) Update(ctx context.Context, id string, fields entity.DirectorFields) (*entity.Director, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.directors[id]; !ok {
		return nil, nil
	}

	director := fields.ToDirector(id)
	r.directors[id] = *director
	return director, nil
}

func (r *directorMemoryRepository) Delete(ctx context.Context, id string) (*entity.Director, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	director, ok := r.directors[id]
	if !ok {
		return nil, nil
	}

	delete(r.directors, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	r.log.Debug("Director deleted", zap.String("director_id", id))
	return &director, nil
}
