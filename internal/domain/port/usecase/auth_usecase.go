package usecase

import (
	"context"

	"github.com/multinvest/platform/internal/domain/entity"
)

// SignupRequest carries the raw signup form fields
type SignupRequest struct {
	Username string
	Email    string
	Password string
	Confirm  string
}

// AuthUseCase defines account and identity operations
type AuthUseCase interface {
	// Signup validates the form, hashes the password and creates the user with
	// a zero balance and no administrator rights
	Signup(ctx context.Context, req SignupRequest) (*entity.User, error)

	// Login verifies the credentials and returns the user. Failure is always
	// ErrInvalidCredentials regardless of which check failed.
	Login(ctx context.Context, email, password string) (*entity.User, error)

	// CurrentUser resolves a session's stored user ID into a fresh user record
	CurrentUser(ctx context.Context, userID uint64) (*entity.User, error)
}
