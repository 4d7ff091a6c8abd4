package usecase

import (
	"errors"

	"movie-graph/internal/data/repository"
	"movie-graph/pkg/utils"
)

const invalidIDMessage = "Must be a valid identifier"

// ValidationError rejects a call before storage is touched. Fields maps
// each offending argument to a human-readable message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func validate(req interface{}) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// asInvalidID turns a repository ErrInvalidID into a validation error on
// field; any other error is returned unchanged.
func asInvalidID(err error, field string) error {
	if errors.Is(err, repository.ErrInvalidID) {
		return &ValidationError{Fields: map[string]string{field: invalidIDMessage}}
	}
	return err
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
