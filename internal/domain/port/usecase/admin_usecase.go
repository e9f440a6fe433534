package usecase

import (
	"context"

	"github.com/multinvest/platform/internal/domain/entity"
	"github.com/multinvest/platform/internal/domain/port/persistence"
)

// AdminOverview aggregates the global listings shown on the admin page
type AdminOverview struct {
	Investments []persistence.InvestmentRecord // newest first
	Users       []*entity.User
	Withdrawals []persistence.WithdrawalRecord // ID descending
}

// AdminUseCase defines administrator-only operations
type AdminUseCase interface {
	// Overview returns all investments, users and withdrawals
	Overview(ctx context.Context) (*AdminOverview, error)

	// DeleteUser removes a user; their investments and withdrawals go with
	// them via the referential cascade
	DeleteUser(ctx context.Context, userID uint64) error
}
