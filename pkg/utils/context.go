package utils

import (
	"context"
	"time"
)

// DefaultTimeout is the standard timeout for one-shot backend calls
const DefaultTimeout = 10 * time.Second

// WithTimeout creates context with default timeout
func WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultTimeout)
}

// IsContextError checks if error is from context cancellation
func IsContextError(err error) bool {
	return err != nil && (err == context.Canceled || err == context.DeadlineExceeded)
}
