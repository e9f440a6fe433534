package investment

import (
	"context"

	"github.com/multinvest/platform/internal/domain/entity"
	coreport "github.com/multinvest/platform/internal/domain/port/core"
	"github.com/multinvest/platform/internal/domain/port/persistence"
	"github.com/multinvest/platform/internal/domain/port/usecase"
)

// Service implements usecase.InvestmentUseCase
type Service struct {
	firmRepo       persistence.FirmRepository
	investmentRepo persistence.InvestmentRepository
	withdrawalRepo persistence.WithdrawalRepository
	uow            persistence.UnitOfWork
	notifier       coreport.Notifier
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
}

// NewService creates a new investment service
func NewService(
	firmRepo persistence.FirmRepository,
	investmentRepo persistence.InvestmentRepository,
	withdrawalRepo persistence.WithdrawalRepository,
	uow persistence.UnitOfWork,
	notifier coreport.Notifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.InvestmentUseCase {
	return &Service{
		firmRepo:       firmRepo,
		investmentRepo: investmentRepo,
		withdrawalRepo: withdrawalRepo,
		uow:            uow,
		notifier:       notifier,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// ListFirms returns all investable firms
func (s *Service) ListFirms(ctx context.Context) ([]*entity.Firm, error) {
	return s.firmRepo.List(ctx)
}
