package investment

import (
	"context"

	"github.com/multinvest/platform/internal/domain/entity"
	errs "github.com/multinvest/platform/internal/domain/error"
)

// Approve completes a pending investment and credits its amount to the owning
// user. The status flip and the balance credit run in one transaction under an
// exclusive row lock, so they either both apply or neither does, and the
// credit can happen at most once.
func (s *Service) Approve(ctx context.Context, investmentID uint64) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	invRepo := s.uow.GetInvestmentRepository(txCtx)
	userRepo := s.uow.GetUserRepository(txCtx)

	inv, err := invRepo.GetByIDForUpdate(txCtx, investmentID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}

	if inv.Status == entity.StatusCompleted {
		_ = s.uow.Rollback(txCtx)
		return errs.ErrAlreadyCompleted
	}

	if err := invRepo.MarkCompleted(txCtx, inv.ID); err != nil {
		_ = s.uow.Rollback(txCtx)
		return errs.NewApprovalError("investment", inv.ID, inv.UserID, inv.GetAmount(), err)
	}

	if err := userRepo.AddToBalance(txCtx, inv.UserID, inv.AmountInCents); err != nil {
		_ = s.uow.Rollback(txCtx)
		return errs.NewApprovalError("investment", inv.ID, inv.UserID, inv.GetAmount(), err)
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return errs.NewApprovalError("investment", inv.ID, inv.UserID, inv.GetAmount(), err)
	}

	s.logger.Info("Investment approved", map[string]any{
		"investment_id": inv.ID,
		"user_id":       inv.UserID,
		"amount":        inv.GetAmount(),
	})

	s.notifier.InvestmentApproved(ctx, inv.UserID, inv.ID, inv.GetAmount())

	return nil
}
