package withdrawal

import (
	"context"
	"errors"

	"github.com/multinvest/platform/internal/domain/entity"
	errs "github.com/multinvest/platform/internal/domain/error"
	"github.com/multinvest/platform/internal/domain/port/usecase"
)

// Submit validates the withdrawal form, debits the user's balance and records
// the pending withdrawal. Debit-at-submission is the business rule: approval
// later never touches the balance again.
//
// The debit is a single conditional update scoped to the user's row and runs
// in the same transaction as the withdrawal insert, so a concurrent submission
// can never overdraw the account or leave a debit without its withdrawal row.
func (s *Service) Submit(ctx context.Context, req usecase.SubmitWithdrawalRequest) (*entity.Withdrawal, error) {
	wd, err := entity.NewWithdrawal(req.UserID, req.WalletAddress, req.Amount, s.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	userRepo := s.uow.GetUserRepository(txCtx)
	wdRepo := s.uow.GetWithdrawalRepository(txCtx)

	if err := userRepo.DebitIfSufficient(txCtx, req.UserID, wd.AmountInCents); err != nil {
		_ = s.uow.Rollback(txCtx)
		if errors.Is(err, errs.ErrInsufficientBalance) {
			return nil, s.insufficientBalance(ctx, req.UserID, wd.GetAmount())
		}
		return nil, err
	}

	if err := wdRepo.Create(txCtx, wd); err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Error("Failed to create withdrawal", map[string]any{
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Withdrawal submitted", map[string]any{
		"withdrawal_id": wd.ID,
		"user_id":       wd.UserID,
		"amount":        wd.GetAmount(),
		"status":        string(wd.Status),
	})

	s.notifier.WithdrawalRequested(ctx, wd.UserID, wd.ID, wd.GetAmount())

	return wd, nil
}

// insufficientBalance builds the detailed error, fetching the current balance
// outside the rolled-back transaction. The lookup is best effort.
func (s *Service) insufficientBalance(ctx context.Context, userID uint64, amount string) error {
	currBalance := "unknown"
	if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
		currBalance = user.GetBalance()
	}

	detailedErr := errs.NewInsufficientBalanceError(userID, amount, currBalance)
	s.logger.Warn("Withdrawal rejected for insufficient balance", map[string]any{
		"user_id":         userID,
		"amount":          amount,
		"current_balance": currBalance,
	})
	return detailedErr
}
