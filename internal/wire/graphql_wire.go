package wire

import (
	"movie-graph/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGraphQL(r chi.Router, graphQLHandler *adaptor.GraphQLHandler) {
	// GET serves queries from the query string, and GraphiQL when enabled.
	r.Get("/graphql", graphQLHandler.ServeHTTP)

	// POST carries queries and mutations in the body.
	r.Post("/graphql", graphQLHandler.ServeHTTP)
}
