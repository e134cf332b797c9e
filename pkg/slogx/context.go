package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// WithContext stashes a logger in ctx for retrieval further down the stack.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored in ctx, or the process default when
// the context carries none (background jobs, tests).
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// WithActor rebinds the contextual logger with the authenticated caller so
// service-layer records name who performed the action.
func WithActor(ctx context.Context, email string) context.Context {
	return WithContext(ctx, FromContext(ctx).With("actor", email))
}
