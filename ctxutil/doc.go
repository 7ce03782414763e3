// Package ctxutil carries request-scoped values through board actions.
//
// Every user action runs with a trace id and an action name so log lines
// emitted by the store, codecs and notifier can be correlated:
//
//	ctx = ctxutil.WithAction(ctx, "import_employees")
//	traceID := ctxutil.GetTraceID(ctx)
package ctxutil
