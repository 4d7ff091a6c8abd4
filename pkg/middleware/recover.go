package middleware

import (
	"net/http"

	"movie-graph/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns a panic in a handler into a 500 JSON envelope. The X-Request-ID
// header is already set, so the caller can quote it when reporting the failure.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				requestID, _ := utils.GetRequestIDFromContext(r.Context())
				fields := []zap.Field{
					zap.Any("panic", rec),
					zap.String("request_id", requestID),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Stack("stack"),
				}
				if info := utils.GetRequestInfo(r.Context()); info != nil && info.Operation != "" {
					fields = append(fields, zap.String("operation", info.Operation))
				}
				logger.Error("Panic recovered", fields...)

				utils.ResponseInternalError(w, "Internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
