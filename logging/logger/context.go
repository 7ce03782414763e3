package logger

import (
	"context"

	"github.com/ncobase/taskboard/ctxutil"
)

var (
	traceKey  = ctxutil.TraceIDKey
	actionKey = ctxutil.ActionKey
)

// getTraceID gets a trace ID from the context.
func getTraceID(ctx context.Context) string {
	return ctxutil.GetTraceID(ctx)
}

// getAction gets the board action from the context.
func getAction(ctx context.Context) string {
	return ctxutil.GetAction(ctx)
}

// EnsureTraceID ensures that a trace ID exists in the context.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	return ctxutil.EnsureTraceID(ctx)
}
