package withdrawal

import (
	"context"

	"github.com/multinvest/platform/internal/domain/entity"
	errs "github.com/multinvest/platform/internal/domain/error"
)

// Approve completes a pending withdrawal. The owner was debited when the
// request was submitted, so this is purely a status change.
func (s *Service) Approve(ctx context.Context, withdrawalID uint64) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	wdRepo := s.uow.GetWithdrawalRepository(txCtx)

	wd, err := wdRepo.GetByIDForUpdate(txCtx, withdrawalID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}

	if wd.Status == entity.StatusCompleted {
		_ = s.uow.Rollback(txCtx)
		return errs.ErrAlreadyCompleted
	}

	if err := wdRepo.MarkCompleted(txCtx, wd.ID); err != nil {
		_ = s.uow.Rollback(txCtx)
		return errs.NewApprovalError("withdrawal", wd.ID, wd.UserID, wd.GetAmount(), err)
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return errs.NewApprovalError("withdrawal", wd.ID, wd.UserID, wd.GetAmount(), err)
	}

	s.logger.Info("Withdrawal approved", map[string]any{
		"withdrawal_id": wd.ID,
		"user_id":       wd.UserID,
		"amount":        wd.GetAmount(),
	})

	return nil
}
