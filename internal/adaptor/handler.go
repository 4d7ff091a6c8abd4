package adaptor

import (
	"movie-graph/internal/data/repository"
	"movie-graph/internal/usecase"
	"movie-graph/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	GraphQL *GraphQLHandler
	Health  *HealthHandler
}

func NewHandler(service *usecase.Service, repo *repository.Repository, config *utils.Config, log *zap.Logger) (*Handler, error) {
	graphQL, err := NewGraphQLHandler(service, GraphQLOptions{
		Pretty:   config.App.Debug,
		GraphiQL: config.App.GraphiQL,
	}, log)
	if err != nil {
		return nil, err
	}

	return &Handler{
		GraphQL: graphQL,
		Health:  NewHealthHandler(repo, config.Storage.Driver, log),
	}, nil
}
