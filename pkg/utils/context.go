package utils

import (
	"context"
)

type contextKey string

const (
	RequestIDKey   contextKey = "request_id"
	RequestInfoKey contextKey = "request_info"
)

// RequestInfo is filled in by handlers while a request is served and read
// back by the access log once it completes.
type RequestInfo struct {
	Operation string
}

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(RequestIDKey)
	if val == nil {
		return "", false
	}

	requestID, ok := val.(string)
	return requestID, ok
}

func WithRequestInfo(ctx context.Context) (context.Context, *RequestInfo) {
	info := &RequestInfo{}
	return context.WithValue(ctx, RequestInfoKey, info), info
}

// GetRequestInfo returns nil when the request did not pass the access log.
func GetRequestInfo(ctx context.Context) *RequestInfo {
	info, _ := ctx.Value(RequestInfoKey).(*RequestInfo)
	return info
}
