package request

import "movie-graph/internal/data/entity"

// AddMovieRequest holds addMovie arguments. Required fields are pointers so
// that an omitted value can be told apart from a zero value.
type AddMovieRequest struct {
	Name       *string `json:"name" validate:"required,min=1"`
	Genre      *string `json:"genre" validate:"required,min=1"`
	Watched    *bool   `json:"watched" validate:"required"`
	Rate       *int    `json:"rate,omitempty" validate:"omitempty,min=-2147483648,max=2147483647"`
	DirectorID *string `json:"directorId,omitempty"`
}

func (r *AddMovieRequest) Fields() entity.MovieFields {
	return entity.MovieFields{
		Name:       *r.Name,
		Genre:      *r.Genre,
		Watched:    *r.Watched,
		Rate:       r.Rate,
		DirectorID: r.DirectorID,
	}
}

// UpdateMovieRequest resupplies every mutable field; Rate and DirectorID
// left nil are cleared on the stored movie.
type UpdateMovieRequest struct {
	ID         string  `json:"id" validate:"required"`
	Name       *string `json:"name" validate:"required,min=1"`
	Genre      *string `json:"genre" validate:"required,min=1"`
	Watched    *bool   `json:"watched" validate:"required"`
	Rate       *int    `json:"rate,omitempty" validate:"omitempty,min=-2147483648,max=2147483647"`
	DirectorID *string `json:"directorId,omitempty"`
}

func (r *UpdateMovieRequest) Fields() entity.MovieFields {
	return entity.MovieFields{
		Name:       *r.Name,
		Genre:      *r.Genre,
		Watched:    *r.Watched,
		Rate:       r.Rate,
		DirectorID: r.DirectorID,
	}
}
