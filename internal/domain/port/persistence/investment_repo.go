package persistence

import (
	"context"

	"github.com/multinvest/platform/internal/domain/entity"
)

// InvestmentRecord is an investment row joined with its firm name and, for
// admin listings, the owning user's display data.
type InvestmentRecord struct {
	Investment entity.Investment
	FirmName   string // empty when the referenced firm has been removed
	Username   string
	Email      string
}

// InvestmentRepository defines persistence operations for investments
type InvestmentRepository interface {
	// Create inserts a new pending investment and fills in its generated ID
	Create(ctx context.Context, investment *entity.Investment) error

	// GetByIDForUpdate retrieves an investment by ID holding an exclusive row
	// lock; must be called inside a unit-of-work transaction.
	// Returns ErrInvestmentNotFound when absent.
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Investment, error)

	// MarkCompleted flips a pending investment to completed. The update is
	// guarded on the pending status so the transition can happen at most once;
	// returns ErrAlreadyCompleted when the guard matches no row.
	MarkCompleted(ctx context.Context, id uint64) error

	// ListByUser returns the user's investments joined with firm names,
	// newest first
	ListByUser(ctx context.Context, userID uint64) ([]InvestmentRecord, error)

	// ListAll returns every investment joined with firm and owner, newest first
	ListAll(ctx context.Context) ([]InvestmentRecord, error)
}
