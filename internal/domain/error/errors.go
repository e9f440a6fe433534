package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized responses and log fields
const (
	// 4xxx - Client errors
	CodeValidation          = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidEmail        = 4003
	CodeWeakPassword        = 4004
	CodePasswordMismatch    = 4005
	CodeDuplicateEmail      = 4006
	CodeInvalidCredentials  = 4010
	CodeInsufficientBalance = 4021
	CodeUnauthorized        = 4030
	CodeUserNotFound        = 4040
	CodeInvestmentNotFound  = 4041
	CodeWithdrawalNotFound  = 4042
	CodeFirmNotFound        = 4043
	CodeAlreadyCompleted    = 4090
	CodeConstraintViolation = 4091
	CodeRowLocked           = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrValidation is returned when submitted form input is missing or malformed
	ErrValidation = errors.New("invalid or missing input")

	// ErrInvalidAmount is returned when a monetary amount is malformed or not positive
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidEmail is returned when an email address is malformed
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrWeakPassword is returned when a password does not meet the strength rules
	ErrWeakPassword = errors.New("password does not meet strength requirements")

	// ErrPasswordMismatch is returned when password and confirmation differ
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrDuplicateEmail is returned when signing up with an already registered email
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login failure; it deliberately does not
	// distinguish an unknown email from a wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned when the caller has no session or lacks the
	// required administrator flag
	ErrUnauthorized = errors.New("not authorized")

	// ErrInsufficientBalance is returned when a withdrawal exceeds the user's balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInvestmentNotFound is returned when the requested investment doesn't exist
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrWithdrawalNotFound is returned when the requested withdrawal doesn't exist
	ErrWithdrawalNotFound = errors.New("withdrawal not found")

	// ErrFirmNotFound is returned when the referenced firm doesn't exist
	ErrFirmNotFound = errors.New("firm not found")

	// ErrAlreadyCompleted is returned when approving a request that has already
	// been completed; the balance is never touched twice
	ErrAlreadyCompleted = errors.New("request already completed")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrRowLocked is returned when a record is locked by a concurrent operation
	ErrRowLocked = errors.New("record is locked by another operation")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidEmail):
		return CodeInvalidEmail
	case errors.Is(err, ErrWeakPassword):
		return CodeWeakPassword
	case errors.Is(err, ErrPasswordMismatch):
		return CodePasswordMismatch
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrInvestmentNotFound):
		return CodeInvestmentNotFound
	case errors.Is(err, ErrWithdrawalNotFound):
		return CodeWithdrawalNotFound
	case errors.Is(err, ErrFirmNotFound):
		return CodeFirmNotFound
	case errors.Is(err, ErrAlreadyCompleted):
		return CodeAlreadyCompleted
	case errors.Is(err, ErrRowLocked):
		return CodeRowLocked
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrValidation):
		return CodeValidation
	default:
		return CodeInternalServer
	}
}

// ValidationError carries the offending field for form validation failures
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeValidation,
	}
}

// NewValidationError creates a new field-level validation error
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// ApprovalError represents a failure while approving an investment or withdrawal
type ApprovalError struct {
	Kind      string // "investment" or "withdrawal"
	RequestID uint64
	UserID    uint64
	Amount    string
	Err       error
}

// Error implements the error interface
func (e *ApprovalError) Error() string {
	return fmt.Sprintf("approval failed for %s %d (user: %d, amount: %s): %v",
		e.Kind, e.RequestID, e.UserID, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *ApprovalError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ApprovalError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "approval_error",
		"kind":       e.Kind,
		"request_id": e.RequestID,
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewApprovalError creates a detailed approval error
func NewApprovalError(kind string, requestID, userID uint64, amount string, err error) error {
	return &ApprovalError{
		Kind:      kind,
		RequestID: requestID,
		UserID:    userID,
		Amount:    amount,
		Err:       err,
	}
}

// IsValidationError checks if the error is any form validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrWeakPassword) ||
		errors.Is(err, ErrPasswordMismatch)
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrInvestmentNotFound) ||
		errors.Is(err, ErrWithdrawalNotFound) ||
		errors.Is(err, ErrFirmNotFound)
}

// IsUnauthorizedError checks if the error is an authorization failure
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
