package entity

import (
	"time"

	errs "github.com/multinvest/platform/internal/domain/error"
	coreport "github.com/multinvest/platform/internal/domain/port/core"
)

// Withdrawal is a user's request to move funds out to an external wallet.
// The user's balance is debited when the request is created; approval is
// purely a status change and never moves funds again.
type Withdrawal struct {
	ID            uint64
	UserID        uint64
	WalletAddress string
	AmountInCents int64
	Status        Status
	CreatedAt     time.Time
}

// NewWithdrawal creates a pending withdrawal after validating its fields.
// The balance check against the owning user happens in the persistence layer,
// atomically with the debit.
func NewWithdrawal(
	userID uint64,
	walletAddress string,
	amount string,
	timeProvider coreport.TimeProvider,
) (*Withdrawal, error) {
	if userID == 0 {
		return nil, errs.ErrUserNotFound
	}
	if walletAddress == "" {
		return nil, errs.NewValidationError("wallet_address", "cannot be empty")
	}

	amountInCents, err := ParsePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	return &Withdrawal{
		UserID:        userID,
		WalletAddress: walletAddress,
		AmountInCents: amountInCents,
		Status:        StatusPending,
		CreatedAt:     timeProvider.Now().UTC(),
	}, nil
}

// GetAmount returns the amount as a string with 2 decimal places
func (w *Withdrawal) GetAmount() string {
	return CentsToString(w.AmountInCents)
}

// Complete transitions the withdrawal to completed. The owner's balance was
// already debited at submission, so no funds move here.
func (w *Withdrawal) Complete() error {
	if !w.Status.CanComplete() {
		return errs.ErrAlreadyCompleted
	}
	w.Status = StatusCompleted
	return nil
}
