package persistence

import (
	"context"

	"github.com/multinvest/platform/internal/domain/entity"
)

// UserRepository defines persistence operations for users.
//
// Balance changes go through AddToBalance and DebitIfSufficient, which must be
// implemented as atomic, row-scoped update expressions rather than
// read-then-write round trips, so concurrent mutations cannot lose an update.
type UserRepository interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by unique email
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create inserts a new user and fills in its generated ID.
	// Returns ErrDuplicateEmail when the email is already registered.
	Create(ctx context.Context, user *entity.User) error

	// List returns all users ordered by ID
	List(ctx context.Context) ([]*entity.User, error)

	// Delete removes a user; dependent investments and withdrawals are removed
	// by the database's referential cascade
	Delete(ctx context.Context, id uint64) error

	// AddToBalance credits (positive delta) the user's balance as a single
	// row-scoped update expression
	AddToBalance(ctx context.Context, id uint64, deltaInCents int64) error

	// DebitIfSufficient debits the user's balance only when it covers the
	// amount, as a single conditional update. Returns ErrInsufficientBalance
	// when the balance is too low and ErrUserNotFound when the user is missing.
	DebitIfSufficient(ctx context.Context, id uint64, amountInCents int64) error
}
