package investment

import (
	"context"

	"github.com/multinvest/platform/internal/domain/entity"
	errs "github.com/multinvest/platform/internal/domain/error"
	"github.com/multinvest/platform/internal/domain/port/usecase"
)

// Dashboard aggregates the user's investments and withdrawals with the sum of
// completed investment amounts and its flat 5% projected return.
func (s *Service) Dashboard(ctx context.Context, userID uint64) (*usecase.DashboardData, error) {
	if userID == 0 {
		return nil, errs.ErrUserNotFound
	}

	investments, err := s.investmentRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list investments for dashboard", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	withdrawals, err := s.withdrawalRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list withdrawals for dashboard", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	var completedTotal int64
	for _, rec := range investments {
		if rec.Investment.IsCompleted() {
			completedTotal += rec.Investment.AmountInCents
		}
	}

	return &usecase.DashboardData{
		Investments:     investments,
		Withdrawals:     withdrawals,
		CompletedTotal:  entity.CentsToString(completedTotal),
		ProjectedReturn: entity.CentsToString(entity.ProjectedReturnCents(completedTotal)),
	}, nil
}
