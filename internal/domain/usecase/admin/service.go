package admin

import (
	"context"
	"errors"

	errs "github.com/multinvest/platform/internal/domain/error"
	coreport "github.com/multinvest/platform/internal/domain/port/core"
	"github.com/multinvest/platform/internal/domain/port/persistence"
	"github.com/multinvest/platform/internal/domain/port/usecase"
)

// Service implements usecase.AdminUseCase
type Service struct {
	userRepo       persistence.UserRepository
	investmentRepo persistence.InvestmentRepository
	withdrawalRepo persistence.WithdrawalRepository
	logger         coreport.Logger
}

// NewService creates a new admin service
func NewService(
	userRepo persistence.UserRepository,
	investmentRepo persistence.InvestmentRepository,
	withdrawalRepo persistence.WithdrawalRepository,
	logger coreport.Logger,
) usecase.AdminUseCase {
	return &Service{
		userRepo:       userRepo,
		investmentRepo: investmentRepo,
		withdrawalRepo: withdrawalRepo,
		logger:         logger,
	}
}

// Overview returns every investment (newest first), every user, and every
// withdrawal (ID descending), each joined with owner display data.
func (s *Service) Overview(ctx context.Context) (*usecase.AdminOverview, error) {
	investments, err := s.investmentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	withdrawals, err := s.withdrawalRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.AdminOverview{
		Investments: investments,
		Users:       users,
		Withdrawals: withdrawals,
	}, nil
}

// DeleteUser removes the user. Dependent investments and withdrawals are
// removed by the database's ON DELETE CASCADE constraints.
func (s *Service) DeleteUser(ctx context.Context, userID uint64) error {
	if userID == 0 {
		return errs.ErrUserNotFound
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return err
		}
		s.logger.Error("Failed to delete user", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return err
	}

	s.logger.Info("User deleted", map[string]any{
		"user_id": userID,
	})
	return nil
}
