package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"movie-graph/internal/usecase"
	"movie-graph/pkg/utils"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/graphql-go/handler"
	"go.uber.org/zap"
)

// GraphQLHandler serves the schema at a single endpoint, accepting GET
// query strings and POST bodies in JSON, form or application/graphql form.
type GraphQLHandler struct {
	gql http.Handler
	log *zap.Logger
}

type GraphQLOptions struct {
	Pretty   bool
	GraphiQL bool
}

func NewGraphQLHandler(service *usecase.Service, opts GraphQLOptions, log *zap.Logger) (*GraphQLHandler, error) {
	schema, err := NewSchema(service, log)
	if err != nil {
		return nil, fmt.Errorf("build graphql schema: %w", err)
	}

	h := &GraphQLHandler{
		log: log.With(zap.String("handler", "graphql")),
	}
	h.gql = handler.New(&handler.Config{
		Schema:           &schema,
		Pretty:           opts.Pretty,
		GraphiQL:         opts.GraphiQL,
		ResultCallbackFn: h.logResult,
	})

	return h, nil
}

func (h *GraphQLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.gql.ServeHTTP(w, r)
}

func (h *GraphQLHandler) logResult(ctx context.Context, params *graphql.Params, result *graphql.Result, _ []byte) {
	operation := operationLabel(params.RequestString, params.OperationName)
	if info := utils.GetRequestInfo(ctx); info != nil {
		info.Operation = operation
	}

	if !result.HasErrors() {
		h.log.Debug("GraphQL operation executed", zap.String("operation", operation))
		return
	}

	messages := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		messages = append(messages, e.Message)
	}

	h.log.Warn("GraphQL operation returned errors",
		zap.String("operation", operation),
		zap.Strings("errors", messages),
	)
}

// operationLabel names the executed operation by its type and root fields,
// e.g. "mutation addDirector" or "query movies,directors". It returns "" for
// documents that do not parse.
func operationLabel(query, operationName string) string {
	doc, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return ""
	}

	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok || op.SelectionSet == nil {
			continue
		}
		if operationName != "" && (op.Name == nil || op.Name.Value != operationName) {
			continue
		}

		fields := make([]string, 0, len(op.SelectionSet.Selections))
		for _, sel := range op.SelectionSet.Selections {
			if f, ok := sel.(*ast.Field); ok && f.Name != nil {
				fields = append(fields, f.Name.Value)
			}
		}
		return op.Operation + " " + strings.Join(fields, ",")
	}

	return ""
}
