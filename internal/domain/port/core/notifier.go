package core

import "context"

// Notifier publishes audit events for balance-moving operations. Publishing is
// best effort: implementations log failures and never fail the operation that
// triggered the event.
type Notifier interface {
	// InvestmentApproved is published when an administrator completes an
	// investment and the owner's balance is credited
	InvestmentApproved(ctx context.Context, userID, investmentID uint64, amount string)
	// WithdrawalRequested is published when a withdrawal is submitted and the
	// owner's balance is debited
	WithdrawalRequested(ctx context.Context, userID, withdrawalID uint64, amount string)
	// Close releases the underlying transport
	Close() error
}
