package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/multinvest/platform/internal/domain/entity"
	errs "github.com/multinvest/platform/internal/domain/error"
	"github.com/multinvest/platform/internal/domain/port/usecase"
)

// Signup validates the signup form and creates the user. New accounts always
// start with a zero balance and without administrator rights.
func (s *Service) Signup(ctx context.Context, req usecase.SignupRequest) (*entity.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if username == "" || email == "" || req.Password == "" || req.Confirm == "" {
		return nil, errs.NewValidationError("form", "all fields are required")
	}
	if !entity.IsValidEmail(email) {
		return nil, errs.ErrInvalidEmail
	}
	if !entity.IsStrongPassword(req.Password) {
		return nil, errs.ErrWeakPassword
	}
	if req.Password != req.Confirm {
		return nil, errs.ErrPasswordMismatch
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(username, email, passwordHash, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, errs.ErrDuplicateEmail) {
			// Surfaced as a generic "already registered" message; which user
			// exists is not leaked beyond the colliding email itself
			s.logger.Warn("Signup with already registered email", map[string]any{
				"error_code": errs.CodeDuplicateEmail,
			})
			return nil, err
		}
		s.logger.Error("Failed to create user", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("User signed up", map[string]any{
		"user_id": user.ID,
	})

	return user, nil
}
