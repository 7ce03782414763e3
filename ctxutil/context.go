package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	// TraceIDKey is the log field and context key of the trace id
	TraceIDKey = "trace_id"
	// ActionKey is the log field and context key of the board action name
	ActionKey = "action"
)

// GetValue retrieves value from context.
func GetValue(ctx context.Context, key string) any {
	if ctx == nil {
		return nil
	}
	return ctx.Value(ctxKey(key))
}

// SetValue sets value to context.
func SetValue(ctx context.Context, key string, val any) context.Context {
	return context.WithValue(ctx, ctxKey(key), val)
}

// GetTraceID gets trace id from context.Context.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := GetValue(ctx, TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// SetTraceID sets trace id to context.Context.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return SetValue(ctx, TraceIDKey, traceID)
}

// EnsureTraceID ensures that a trace ID exists in the context.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if traceID := GetTraceID(ctx); traceID != "" {
		return ctx, traceID
	}
	traceID := uuid.NewString()
	return SetTraceID(ctx, traceID), traceID
}

// GetAction gets the board action name from context.Context.
func GetAction(ctx context.Context) string {
	if action, ok := GetValue(ctx, ActionKey).(string); ok {
		return action
	}
	return ""
}

// WithAction tags the context with a board action name and a trace id.
func WithAction(ctx context.Context, action string) context.Context {
	ctx, _ = EnsureTraceID(ctx)
	return SetValue(ctx, ActionKey, action)
}
