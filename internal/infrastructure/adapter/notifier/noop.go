package notifier

import "context"

// NoopNotifier discards all events. Used when no brokers are configured.
type NoopNotifier struct{}

// NewNoopNotifier creates a NoopNotifier
func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

// InvestmentApproved does nothing
func (n *NoopNotifier) InvestmentApproved(ctx context.Context, userID, investmentID uint64, amount string) {
}

// WithdrawalRequested does nothing
func (n *NoopNotifier) WithdrawalRequested(ctx context.Context, userID, withdrawalID uint64, amount string) {
}

// Close does nothing
func (n *NoopNotifier) Close() error { return nil }
