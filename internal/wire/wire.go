// internal/wire/wire.go
package wire

import (
	"movie-graph/internal/adaptor"
	"movie-graph/internal/data/repository"
	"movie-graph/internal/usecase"
	"movie-graph/pkg/middleware"
	"movie-graph/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router on top of repo.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	service := usecase.NewService(repo, logger)

	handler, err := adaptor.NewHandler(service, repo, config, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Router: setupRouter(handler, logger),
	}, nil
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// RequestID runs first so the access log can see the ID.
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireGraphQL(r, handler.GraphQL)

	r.Get("/health", handler.Health.Check)

	return r
}
