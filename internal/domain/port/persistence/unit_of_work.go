package persistence

import (
	"context"
)

// UnitOfWork coordinates multi-statement operations across repositories so
// that paired writes either both apply or neither does. An investment's
// status flip travels with the owner's balance credit, and a withdrawal
// insert travels with the owner's balance debit.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetInvestmentRepository returns an investment repository bound to the current transaction
	GetInvestmentRepository(ctx context.Context) InvestmentRepository

	// GetWithdrawalRepository returns a withdrawal repository bound to the current transaction
	GetWithdrawalRepository(ctx context.Context) WithdrawalRepository
}
