package repository

import (
	"context"
	"strings"
	"time"

	coreport "github.com/multinvest/platform/internal/domain/port/core"
)

// ErrorClassifier recognizes the postgres and pgx error strings the
// repositories need to tell apart
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}

// IsLockError checks if the error came from row locking or serialization
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "deadlock detected") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "lock timeout") ||
		strings.Contains(msg, "could not obtain lock")
}

// IsConstraintError checks if the error is a constraint violation
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "violates foreign key constraint") ||
		strings.Contains(msg, "violates check constraint") ||
		strings.Contains(msg, "violates not-null constraint") ||
		c.IsDuplicateKeyError(err)
}

// IsTransientError checks if the error is a connection-level failure that an
// idempotent read may retry
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "conn closed") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "unexpected EOF") ||
		strings.Contains(msg, "context deadline exceeded")
}

// QueryRunner bounds database statements with the configured query timeout.
// Idempotent reads get a single retry after a transient failure; writes never
// retry, balance mutations must not run twice.
type QueryRunner struct {
	timeout      time.Duration
	timeProvider coreport.TimeProvider
	classifier   *ErrorClassifier
	logger       coreport.Logger
}

// NewQueryRunner creates a runner with the given statement timeout.
// A zero timeout leaves statement contexts unbounded.
func NewQueryRunner(timeout time.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *QueryRunner {
	return &QueryRunner{
		timeout:      timeout,
		timeProvider: timeProvider,
		classifier:   NewErrorClassifier(),
		logger:       logger,
	}
}

func (q *QueryRunner) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if q.timeout <= 0 {
		return ctx, func() {}
	}
	return q.timeProvider.WithTimeout(ctx, q.timeout)
}

// Read runs an idempotent query, retrying once when the first attempt fails
// with a transient error. Each attempt gets a fresh timeout.
func (q *QueryRunner) Read(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	runCtx, cancel := q.bound(ctx)
	err := fn(runCtx)
	cancel()
	if err == nil || !q.classifier.IsTransientError(err) {
		return err
	}

	q.logger.Warn("Retrying read after transient database error", map[string]any{
		"operation": operation,
		"error":     err.Error(),
	})

	retryCtx, retryCancel := q.bound(ctx)
	defer retryCancel()
	return fn(retryCtx)
}

// Write runs a mutating statement with the timeout bound and no retry
func (q *QueryRunner) Write(ctx context.Context, fn func(ctx context.Context) error) error {
	runCtx, cancel := q.bound(ctx)
	defer cancel()
	return fn(runCtx)
}
