package logging

import (
	"context"

	"github.com/alexisbeaulieu97/sonora/internal/ports"
)

// WithCorrelationID stores the provided correlation identifier inside the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return ports.WithCorrelationID(ctx, id)
}

// NewCorrelatedContext derives a context carrying a fresh correlation ID.
func NewCorrelatedContext(ctx context.Context) context.Context {
	return ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())
}
