package adaptor

import (
	"context"
	"errors"

	"movie-graph/internal/usecase"
	"movie-graph/pkg/utils"

	"go.uber.org/zap"
)

const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInternal         = "INTERNAL"
)

// gqlError carries an error code into the "extensions" member of a
// GraphQL error.
type gqlError struct {
	message string
	code    string
	fields  map[string]string
}

func (e *gqlError) Error() string {
	return e.message
}

func (e *gqlError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.code}
	if len(e.fields) > 0 {
		ext["fields"] = e.fields
	}
	return ext
}

// handleServiceError passes validation errors through to the caller and
// hides everything else behind a generic operation failure.
func handleServiceError(ctx context.Context, log *zap.Logger, err error, operation string) error {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("operation", operation),
	}
	if requestID, ok := utils.GetRequestIDFromContext(ctx); ok {
		fields = append(fields, zap.String("request_id", requestID))
	}

	var ve *usecase.ValidationError
	if errors.As(err, &ve) {
		log.Warn(operation+" validation failed", fields...)
		return &gqlError{message: ve.Error(), code: CodeValidationFailed, fields: ve.Fields}
	}

	log.Error("Failed to "+operation, fields...)
	return &gqlError{message: "failed to " + operation, code: CodeInternal}
}
