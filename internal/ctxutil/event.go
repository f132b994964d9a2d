// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

// EventKey is the context key for the tag event ID.
// Exported so it can be used consistently across packages.
type EventKey struct{}

// WithEventID returns a context with the tag event ID embedded.
func WithEventID(ctx context.Context, eventID string) context.Context {
	return context.WithValue(ctx, EventKey{}, eventID)
}

// EventIDFromContext returns the tag event ID from context, or empty string if not set.
func EventIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(EventKey{}).(string); ok {
		return v
	}
	return ""
}

// NewEvent starts a tag event: it returns a context carrying a fresh event ID
// and the ID itself. An ID already present in ctx is kept.
func NewEvent(ctx context.Context) (context.Context, string) {
	if id := EventIDFromContext(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return WithEventID(ctx, id), id
}
