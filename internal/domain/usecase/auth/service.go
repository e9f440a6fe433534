package auth

import (
	coreport "github.com/multinvest/platform/internal/domain/port/core"
	"github.com/multinvest/platform/internal/domain/port/persistence"
	"github.com/multinvest/platform/internal/domain/port/usecase"
)

// Service implements usecase.AuthUseCase
type Service struct {
	userRepo     persistence.UserRepository
	hasher       coreport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new auth service
func NewService(
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.AuthUseCase {
	return &Service{
		userRepo:     userRepo,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
