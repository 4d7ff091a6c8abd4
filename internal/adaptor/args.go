package adaptor

import (
	"movie-graph/internal/data/entity"
)

// Argument helpers return nil for omitted or explicitly null arguments.

func idArg(args map[string]interface{}) string {
	id, _ := args["id"].(string)
	return id
}

func stringArg(args map[string]interface{}, name string) *string {
	v, ok := args[name].(string)
	if !ok {
		return nil
	}
	return &v
}

func intArg(args map[string]interface{}, name string) *int {
	v, ok := args[name].(int)
	if !ok {
		return nil
	}
	return &v
}

func boolArg(args map[string]interface{}, name string) *bool {
	v, ok := args[name].(bool)
	if !ok {
		return nil
	}
	return &v
}

// movieResult and directorResult keep a missing record an untyped nil so
// the field resolves to null.
func movieResult(movie *entity.Movie) interface{} {
	if movie == nil {
		return nil
	}
	return movie
}

func directorResult(director *entity.Director) interface{} {
	if director == nil {
		return nil
	}
	return director
}
