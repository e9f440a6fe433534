package entity

import (
	"time"

	errs "github.com/multinvest/platform/internal/domain/error"
	coreport "github.com/multinvest/platform/internal/domain/port/core"
)

// Investment is a user's request to place an amount into a firm. It is created
// pending and moves money only when an administrator approves it.
type Investment struct {
	ID            uint64
	UserID        uint64  // Owning user
	FirmID        *uint64 // Referenced firm; nil once the firm has been removed
	TransactionID string  // External payment reference supplied by the user
	AmountInCents int64
	Status        Status
	CreatedAt     time.Time
}

// NewInvestment creates a pending investment after validating its fields.
// Amount is the raw form value; it must parse to a positive two-decimal number.
func NewInvestment(
	userID uint64,
	firmID uint64,
	transactionID string,
	amount string,
	timeProvider coreport.TimeProvider,
) (*Investment, error) {
	if userID == 0 {
		return nil, errs.ErrUserNotFound
	}
	if firmID == 0 {
		return nil, errs.NewValidationError("firm_id", "cannot be empty")
	}
	if transactionID == "" {
		return nil, errs.NewValidationError("transaction_id", "cannot be empty")
	}

	amountInCents, err := ParsePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	fid := firmID
	return &Investment{
		UserID:        userID,
		FirmID:        &fid,
		TransactionID: transactionID,
		AmountInCents: amountInCents,
		Status:        StatusPending,
		CreatedAt:     timeProvider.Now().UTC(),
	}, nil
}

// GetAmount returns the amount as a string with 2 decimal places
func (i *Investment) GetAmount() string {
	return CentsToString(i.AmountInCents)
}

// Complete transitions the investment to completed. The transition is legal
// exactly once; crediting the owner's balance happens alongside it.
func (i *Investment) Complete() error {
	if !i.Status.CanComplete() {
		return errs.ErrAlreadyCompleted
	}
	i.Status = StatusCompleted
	return nil
}

// IsCompleted reports whether the investment has been approved
func (i *Investment) IsCompleted() bool {
	return i.Status == StatusCompleted
}
