package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain so that use cases and
// entities can be tested with a fixed clock.
type TimeProvider interface {
	// Now returns the current time
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
	// WithTimeout returns a context that will be canceled after the given timeout
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
