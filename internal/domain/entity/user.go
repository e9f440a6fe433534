package entity

import (
	"time"

	errs "github.com/multinvest/platform/internal/domain/error"
	coreport "github.com/multinvest/platform/internal/domain/port/core"
)

// User represents a registered platform user with a monetary balance
type User struct {
	ID           uint64    // Unique identifier for the user
	Username     string    // Display name
	Email        string    // Unique login email
	PasswordHash string    // One-way hash of the password, never the plaintext
	balance      int64     // Balance stored in cents to avoid floating point precision issues (private)
	IsAdmin      bool      // Administrator flag
	CreatedAt    time.Time // When the user was created
	UpdatedAt    time.Time // When the user was last updated
}

// NewUser creates a new user with a zero balance and no administrator rights
func NewUser(username, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	if username == "" {
		return nil, errs.NewValidationError("username", "cannot be empty")
	}
	if !IsValidEmail(email) {
		return nil, errs.ErrInvalidEmail
	}
	if passwordHash == "" {
		return nil, errs.NewValidationError("password", "hash cannot be empty")
	}

	now := timeProvider.Now()
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		balance:      0,
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Balance returns the current balance in cents (for internal use)
func (u *User) Balance() int64 {
	return u.balance
}

// GetBalance returns the balance as a string with 2 decimal places
func (u *User) GetBalance() string {
	return CentsToString(u.balance)
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (u *User) SetBalance(balanceInCents int64, timeProvider coreport.TimeProvider) {
	u.balance = balanceInCents
	u.UpdatedAt = timeProvider.Now()
}

// CanDebit checks if the user has enough balance for a deduction
func (u *User) CanDebit(amountInCents int64) bool {
	return u.balance >= amountInCents
}

// Credit adds the amount to the balance
func (u *User) Credit(amountInCents int64, timeProvider coreport.TimeProvider) {
	u.balance += amountInCents
	u.UpdatedAt = timeProvider.Now()
}

// Debit subtracts the amount from the balance if sufficient balance exists.
// Returns an error if the balance would go negative.
func (u *User) Debit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if u.balance < amountInCents {
		return errs.ErrInsufficientBalance
	}

	u.balance -= amountInCents
	u.UpdatedAt = timeProvider.Now()
	return nil
}
