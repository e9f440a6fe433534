package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/multinvest/platform/internal/domain/entity"
	errs "github.com/multinvest/platform/internal/domain/error"
)

// Login verifies the credentials and returns the matching user. The failure
// mode is always ErrInvalidCredentials: an unknown email and a wrong password
// are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, errs.ErrUserNotFound) {
			s.logger.Error("Failed to look up user for login", map[string]any{
				"error": err.Error(),
			})
		}
		return nil, errs.ErrInvalidCredentials
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		s.logger.Warn("Failed login attempt", map[string]any{
			"user_id": user.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
		"admin":   user.IsAdmin,
	})

	return user, nil
}

// CurrentUser resolves a session's stored user ID into a fresh user record
func (s *Service) CurrentUser(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrUserNotFound
	}
	return s.userRepo.GetByID(ctx, userID)
}
