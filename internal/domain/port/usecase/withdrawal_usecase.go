package usecase

import (
	"context"

	"github.com/multinvest/platform/internal/domain/entity"
)

// SubmitWithdrawalRequest carries the raw withdrawal form fields
type SubmitWithdrawalRequest struct {
	UserID        uint64
	WalletAddress string
	Amount        string
}

// WithdrawalUseCase defines withdrawal submission and approval
type WithdrawalUseCase interface {
	// Submit validates the form, debits the user's balance and creates a
	// pending withdrawal, both inside one transaction. The debit happens now;
	// approval later only flips the status.
	Submit(ctx context.Context, req SubmitWithdrawalRequest) (*entity.Withdrawal, error)

	// Approve completes a pending withdrawal. The balance was already debited
	// at submission and is not touched again.
	Approve(ctx context.Context, withdrawalID uint64) error
}
