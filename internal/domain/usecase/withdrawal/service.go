package withdrawal

import (
	coreport "github.com/multinvest/platform/internal/domain/port/core"
	"github.com/multinvest/platform/internal/domain/port/persistence"
	"github.com/multinvest/platform/internal/domain/port/usecase"
)

// Service implements usecase.WithdrawalUseCase
type Service struct {
	userRepo       persistence.UserRepository
	withdrawalRepo persistence.WithdrawalRepository
	uow            persistence.UnitOfWork
	notifier       coreport.Notifier
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
}

// NewService creates a new withdrawal service
func NewService(
	userRepo persistence.UserRepository,
	withdrawalRepo persistence.WithdrawalRepository,
	uow persistence.UnitOfWork,
	notifier coreport.Notifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.WithdrawalUseCase {
	return &Service{
		userRepo:       userRepo,
		withdrawalRepo: withdrawalRepo,
		uow:            uow,
		notifier:       notifier,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}
