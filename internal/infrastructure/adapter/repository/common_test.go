package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	coremocks "github.com/multinvest/platform/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestErrorClassifier(t *testing.T) {
	classifier := NewErrorClassifier()

	tests := []struct {
		name      string
		err       error
		duplicate bool
		lock      bool
		constrain bool
		transient bool
	}{
		{
			name:      "duplicate key",
			err:       errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`),
			duplicate: true,
			constrain: true,
		},
		{
			name: "deadlock",
			err:  errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"),
			lock: true,
		},
		{
			name: "serialization failure",
			err:  errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)"),
			lock: true,
		},
		{
			name:      "foreign key violation",
			err:       errors.New(`ERROR: insert or update on table "investments" violates foreign key constraint "fk_users_investments" (SQLSTATE 23503)`),
			constrain: true,
		},
		{
			name:      "not-null violation",
			err:       errors.New(`ERROR: null value in column "email" violates not-null constraint (SQLSTATE 23502)`),
			constrain: true,
		},
		{
			name:      "connection refused",
			err:       errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			transient: true,
		},
		{
			name:      "connection reset",
			err:       errors.New("read tcp 10.0.0.2:49214->10.0.0.3:5432: read: connection reset by peer"),
			transient: true,
		},
		{
			name:      "closed pgx connection",
			err:       errors.New("conn closed"),
			transient: true,
		},
		{
			name:      "statement deadline",
			err:       errors.New("context deadline exceeded"),
			transient: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("record not found"),
		},
		{
			name: "nil error",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.duplicate, classifier.IsDuplicateKeyError(tt.err))
			assert.Equal(t, tt.lock, classifier.IsLockError(tt.err))
			assert.Equal(t, tt.constrain, classifier.IsConstraintError(tt.err))
			assert.Equal(t, tt.transient, classifier.IsTransientError(tt.err))
		})
	}
}

func TestQueryRunnerRead(t *testing.T) {
	ctx := context.Background()
	transientErr := errors.New("read tcp 10.0.0.2:49214->10.0.0.3:5432: read: connection reset by peer")

	t.Run("returns the first success without retrying", func(t *testing.T) {
		runner := NewQueryRunner(0, coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

		calls := 0
		err := runner.Read(ctx, "list firms", func(ctx context.Context) error {
			calls++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries once after a transient failure", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Warn("Retrying read after transient database error", mock.Anything).Once()
		runner := NewQueryRunner(0, coremocks.NewMockTimeProvider(t), mockLogger)

		calls := 0
		err := runner.Read(ctx, "list firms", func(ctx context.Context) error {
			calls++
			if calls == 1 {
				return transientErr
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("gives up after the retry fails", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Warn("Retrying read after transient database error", mock.Anything).Once()
		runner := NewQueryRunner(0, coremocks.NewMockTimeProvider(t), mockLogger)

		calls := 0
		err := runner.Read(ctx, "list users", func(ctx context.Context) error {
			calls++
			return transientErr
		})

		assert.ErrorIs(t, err, transientErr)
		assert.Equal(t, 2, calls)
	})

	t.Run("does not retry non-transient errors", func(t *testing.T) {
		runner := NewQueryRunner(0, coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))
		notFound := errors.New("record not found")

		calls := 0
		err := runner.Read(ctx, "get user", func(ctx context.Context) error {
			calls++
			return notFound
		})

		assert.ErrorIs(t, err, notFound)
		assert.Equal(t, 1, calls)
	})

	t.Run("binds the attempt to the query timeout", func(t *testing.T) {
		timeout := 5 * time.Second
		boundCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().WithTimeout(mock.Anything, timeout).Return(boundCtx, func() {}).Once()
		runner := NewQueryRunner(timeout, mockTime, coremocks.NewMockLogger(t))

		err := runner.Read(ctx, "get user", func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		})
		assert.NoError(t, err)
	})
}

func TestQueryRunnerWrite(t *testing.T) {
	ctx := context.Background()

	t.Run("never retries", func(t *testing.T) {
		runner := NewQueryRunner(0, coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))
		transientErr := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

		calls := 0
		err := runner.Write(ctx, func(ctx context.Context) error {
			calls++
			return transientErr
		})

		assert.ErrorIs(t, err, transientErr)
		assert.Equal(t, 1, calls)
	})

	t.Run("binds the statement to the query timeout", func(t *testing.T) {
		timeout := 2 * time.Second
		boundCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().WithTimeout(mock.Anything, timeout).Return(boundCtx, func() {}).Once()
		runner := NewQueryRunner(timeout, mockTime, coremocks.NewMockLogger(t))

		err := runner.Write(ctx, func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		})
		assert.NoError(t, err)
	})
}
