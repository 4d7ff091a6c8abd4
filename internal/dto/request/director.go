package request

import "movie-graph/internal/data/entity"

type AddDirectorRequest struct {
	Name *string `json:"name" validate:"required,min=1"`
	Age  *int    `json:"age" validate:"required,min=-2147483648,max=2147483647"`
}

func (r *AddDirectorRequest) Fields() entity.DirectorFields {
	return entity.DirectorFields{Name: *r.Name, Age: *r.Age}
}

type UpdateDirectorRequest struct {
	ID   string  `json:"id" validate:"required"`
	Name *string `json:"name" validate:"required,min=1"`
	Age  *int    `json:"age" validate:"required,min=-2147483648,max=2147483647"`
}

func (r *UpdateDirectorRequest) Fields() entity.DirectorFields {
	return entity.DirectorFields{Name: *r.Name, Age: *r.Age}
}
