// Package utils holds small helpers shared by the client: request id
// propagation and bearer token inspection.
package utils

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying requestID. Outbound calls
// forward it as X-Request-ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestIDFromContext reports the request id carried by ctx. Empty ids
// are treated as missing.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey{}).(string)
	return requestID, ok && requestID != ""
}

// RequestID returns the id carried by ctx, or a new one.
func RequestID(ctx context.Context) string {
	if id, ok := GetRequestIDFromContext(ctx); ok {
		return id
	}
	return NewRequestID()
}

// NewRequestID returns a time-ordered UUIDv7, or a random UUID if one
// cannot be produced.
func NewRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
