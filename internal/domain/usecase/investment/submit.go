package investment

import (
	"context"
	"strconv"
	"strings"

	"github.com/multinvest/platform/internal/domain/entity"
	errs "github.com/multinvest/platform/internal/domain/error"
	"github.com/multinvest/platform/internal/domain/port/usecase"
)

// Submit validates the investment form and records a pending investment.
// No money moves here: the credit happens only when an administrator approves.
func (s *Service) Submit(ctx context.Context, req usecase.SubmitInvestmentRequest) (*entity.Investment, error) {
	firmIDRaw := strings.TrimSpace(req.FirmID)
	transactionID := strings.TrimSpace(req.TransactionID)
	amount := strings.TrimSpace(req.Amount)

	if firmIDRaw == "" || transactionID == "" || amount == "" {
		return nil, errs.NewValidationError("form", "firm, transaction reference and amount are required")
	}

	firmID, err := strconv.ParseUint(firmIDRaw, 10, 64)
	if err != nil || firmID == 0 {
		return nil, errs.NewValidationError("firm_id", "must be a positive integer")
	}

	inv, err := entity.NewInvestment(req.UserID, firmID, transactionID, amount, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if _, err := s.firmRepo.GetByID(ctx, firmID); err != nil {
		return nil, err
	}

	if err := s.investmentRepo.Create(ctx, inv); err != nil {
		s.logger.Error("Failed to create investment", map[string]any{
			"user_id": req.UserID,
			"firm_id": firmID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Investment submitted", map[string]any{
		"investment_id": inv.ID,
		"user_id":       inv.UserID,
		"firm_id":       firmID,
		"amount":        inv.GetAmount(),
		"status":        string(inv.Status),
	})

	return inv, nil
}
