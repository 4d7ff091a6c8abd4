package adaptor

import (
	"movie-graph/internal/data/entity"
	"movie-graph/internal/dto/request"
	"movie-graph/internal/usecase"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

// resolver binds GraphQL fields to the services. It holds no per-request state.
type resolver struct {
	service *usecase.Service
	log     *zap.Logger
}

// NewSchema builds the Movie/Director schema with its queries and mutations.
func NewSchema(service *usecase.Service, log *zap.Logger) (graphql.Schema, error) {
	r := &resolver{
		service: service,
		log:     log.With(zap.String("handler", "graphql")),
	}

	var movieType, directorType *graphql.Object

	movieType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Movie",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":         &graphql.Field{Type: graphql.ID},
				"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"genre":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"watched":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
				"rate":       &graphql.Field{Type: graphql.Int},
				"directorId": &graphql.Field{Type: graphql.ID},
				"director": &graphql.Field{
					Type:    directorType,
					Resolve: r.movieDirector,
				},
			}
		}),
	})

	directorType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Director",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":   &graphql.Field{Type: graphql.ID},
				"name": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"age":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"movies": &graphql.Field{
					Type:    graphql.NewList(movieType),
					Resolve: r.directorMovies,
				},
			}
		}),
	})

	idArgs := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	movieArgs := func(withID bool) graphql.FieldConfigArgument {
		args := graphql.FieldConfigArgument{
			"name":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"genre":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"watched":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Boolean)},
			"rate":       &graphql.ArgumentConfig{Type: graphql.Int},
			"directorId": &graphql.ArgumentConfig{Type: graphql.ID},
		}
		if withID {
			args["id"] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}
		}
		return args
	}

	directorArgs := func(withID bool) graphql.FieldConfigArgument {
		args := graphql.FieldConfigArgument{
			"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"age":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		}
		if withID {
			args["id"] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}
		}
		return args
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"movie":     &graphql.Field{Type: movieType, Args: idArgs, Resolve: r.movie},
			"director":  &graphql.Field{Type: directorType, Args: idArgs, Resolve: r.director},
			"movies":    &graphql.Field{Type: graphql.NewList(movieType), Resolve: r.movies},
			"directors": &graphql.Field{Type: graphql.NewList(directorType), Resolve: r.directors},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addDirector":    &graphql.Field{Type: directorType, Args: directorArgs(false), Resolve: r.addDirector},
			"addMovie":       &graphql.Field{Type: movieType, Args: movieArgs(false), Resolve: r.addMovie},
			"updateDirector": &graphql.Field{Type: directorType, Args: directorArgs(true), Resolve: r.updateDirector},
			"updateMovie":    &graphql.Field{Type: movieType, Args: movieArgs(true), Resolve: r.updateMovie},
			"deleteDirector": &graphql.Field{Type: directorType, Args: idArgs, Resolve: r.deleteDirector},
			"deleteMovie":    &graphql.Field{Type: movieType, Args: idArgs, Resolve: r.deleteMovie},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

// ==================== RELATIONSHIPS ====================

func (r *resolver) movieDirector(p graphql.ResolveParams) (interface{}, error) {
	movie, _ := p.Source.(*entity.Movie)
	director, err := r.service.Director.GetDirectorOfMovie(p.Context, movie)
	if err != nil {
		return nil, handleServiceError(p.Context, r.log, err, "resolve movie director")
	}
	return directorResult(director), nil
}

func (r *resolver) directorMovies(p graphql.ResolveParams) (interface{}, error) {
	director, _ := p.Source.(*entity.Director)
	movies, err := r.service.Movie.GetMoviesByDirector(p.Context, director)
	if err != nil {
		return nil, handleServiceError(p.Context, r.log, err, "resolve director movies")
	}
	return movies, nil
}

// ==================== QUERIES ====================

func (r *resolver) movie(p graphql.ResolveParams) (interface{}, error) {
	movie, err := r.service.Movie.GetMovie(p.Context, idArg(p.Args))
	if err != nil {
		return nil, handleServiceError(p.Context, r.log, err, "get movie")
	}
	return movieResult(movie), nil
}

func (r *resolver) director(p graphql.ResolveParams) (interface{}, error) {
	director, err := r.service.Director.GetDirector(p.Context, idArg(p.Args))
	if err != nil {
		return nil, handleServiceError(p.Context, r.log, err, "get director")
	}
	return directorResult(director), nil
}

func (r *resolver) movies(p graphql.ResolveParams) (interface{}, error) {
	movies, err := r.service.Movie.GetMovies(p.Context)
	if err != nil {
		return nil, handleServiceError(p.Context, r.log, err, "get movies")
	}
	return movies, nil
}

func (r *resolver) directors(p graphql.ResolveParams) (interface{}, error) {
	directors, err := r.service.Director.GetDirectors(p.Context)
	if err != nil {
		return nil, handleServiceError(p.Context, r.log, err, "get directors")
	}
	return directors, nil
}

// ==================== MUTATIONS ====================

func (r *resolver) addDirector(p graphql.ResolveParams) (interface{}, error) {
	req := &request.AddDirectorRequest{
		Name: stringArg(p.Args, "name"),
		Age:  intArg(p.Args, "age"),
	}

	director, err := r.service.Director.CreateDirector(p.Context, req)
	if err != nil {
		return nil, handleServiceError(p.Context, r.log, err, "add director")
	}
	return directorResult(director), nil
}

func (r *resolver) addMovie(p graphql.ResolveParams) (interface{}, error) {
	req := &request.AddMovieRequest{
		Name:       stringArg(p.Args, "name"),
		Genre:      stringArg(p.Args, "genre"),
		Watched:    boolArg(p.Args, "watched"),
		Rate:       intArg(p.Args, "rate"),
		DirectorID: stringArg(p.Args, "directorId"),
	}

	movie, err := r.service.Movie.CreateMovie(p.Context, req)
	if err != nil {
		return nil, handleServiceError(p.Context, r.log, err, "add movie")
	}
	return movieResult(movie), nil
}

func (r *resolver) updateDirector(p graphql.ResolveParams) (interface{}, error) {
	req := &request.UpdateDirectorRequest{
		ID:   idArg(p.Args),
		Name: stringArg(p.Args, "name"),
		Age:  intArg(p.Args, "age"),
	}

	director, err := r.service.Director.UpdateDirector(p.Context, req)
	if err != nil {
		return nil, handleServiceError(p.Context, r.log, err, "update director")
	}
	return directorResult(director), nil
}

func (r *resolver) updateMovie(p graphql.ResolveParams) (interface{}, error) {
	req := &request.UpdateMovieRequest{
		ID:         idArg(p.Args),
		Name:       stringArg(p.Args, "name"),
		Genre:      stringArg(p.Args, "genre"),
		Watched:    boolArg(p.Args, "watched"),
		Rate:       intArg(p.Args, "rate"),
		DirectorID: stringArg(p.Args, "directorId"),
	}

	movie, err := r.service.Movie.UpdateMovie(p.Context, req)
	if err != nil {
		return nil, handleServiceError(p.Context, r.log, err, "update movie")
	}
	return movieResult(movie), nil
}

func (r *resolver) deleteDirector(p graphql.ResolveParams) (interface{}, error) {
	director, err := r.service.Director.DeleteDirector(p.Context, idArg(p.Args))
	if err != nil {
		return nil, handleServiceError(p.Context, r.log, err, "delete director")
	}
	return directorResult(director), nil
}

func (r *resolver) deleteMovie(p graphql.ResolveParams) (interface{}, error) {
	movie, err := r.service.Movie.DeleteMovie(p.Context, idArg(p.Args))
	if err != nil {
		return nil, handleServiceError(p.Context, r.log, err, "delete movie")
	}
	return movieResult(movie), nil
}
