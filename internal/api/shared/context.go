package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is a private key type for context values set by this package
// and the middleware.
type ContextKey string

const (
	// IdentityEmailContextKey is the context key for the authenticated
	// identity email placed there by the auth middleware.
	IdentityEmailContextKey ContextKey = "identityEmail"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a fresh trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
