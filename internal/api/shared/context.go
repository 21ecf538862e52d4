package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is the key type for context values set by the API layer.
type ContextKey string

// Context keys for various values.
const (
	// ConsumerContextKey is the context key for the authenticated
	// consumer name.
	ConsumerContextKey ContextKey = "consumer"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a fresh trace ID to the context. This is useful for
// correlating logs and error responses.
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

// GetConsumer retrieves the authenticated consumer name from the
// context. Returns the name and whether it was present.
func GetConsumer(ctx context.Context) (string, bool) {
	consumer, ok := ctx.Value(ConsumerContextKey).(string)
	return consumer, ok
}
