package persistence

import (
	"context"

	"github.com/multinvest/platform/internal/domain/entity"
)

// WithdrawalRecord is a withdrawal row joined with the owning user's display
// data for admin listings.
type WithdrawalRecord struct {
	Withdrawal entity.Withdrawal
	Username   string
	Email      string
}

// WithdrawalRepository defines persistence operations for withdrawals
type WithdrawalRepository interface {
	// Create inserts a new pending withdrawal and fills in its generated ID
	Create(ctx context.Context, withdrawal *entity.Withdrawal) error

	// GetByIDForUpdate retrieves a withdrawal by ID holding an exclusive row
	// lock; must be called inside a unit-of-work transaction.
	// Returns ErrWithdrawalNotFound when absent.
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Withdrawal, error)

	// MarkCompleted flips a pending withdrawal to completed. Guarded on the
	// pending status; returns ErrAlreadyCompleted when the guard matches no row.
	MarkCompleted(ctx context.Context, id uint64) error

	// ListByUser returns the user's withdrawals ordered by ID descending
	ListByUser(ctx context.Context, userID uint64) ([]entity.Withdrawal, error)

	// ListAll returns every withdrawal joined with its owner, ID descending
	ListAll(ctx context.Context) ([]WithdrawalRecord, error)
}
