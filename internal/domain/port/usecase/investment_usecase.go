package usecase

import (
	"context"

	"github.com/multinvest/platform/internal/domain/entity"
	"github.com/multinvest/platform/internal/domain/port/persistence"
)

// SubmitInvestmentRequest carries the raw investment form fields
type SubmitInvestmentRequest struct {
	UserID        uint64
	FirmID        string
	TransactionID string
	Amount        string
}

// DashboardData aggregates everything the dashboard page shows for one user
type DashboardData struct {
	Investments     []persistence.InvestmentRecord
	Withdrawals     []entity.Withdrawal
	CompletedTotal  string // sum of completed investment amounts
	ProjectedReturn string // completed total at the flat 5% projected yield
}

// InvestmentUseCase defines investment browsing, submission and approval
type InvestmentUseCase interface {
	// ListFirms returns all investable firms
	ListFirms(ctx context.Context) ([]*entity.Firm, error)

	// Submit validates the form and creates a pending investment.
	// No money moves at this point.
	Submit(ctx context.Context, req SubmitInvestmentRequest) (*entity.Investment, error)

	// Approve completes a pending investment and credits its amount to the
	// owning user's balance, both inside one transaction
	Approve(ctx context.Context, investmentID uint64) error

	// Dashboard returns the user's investments, withdrawals, completed total
	// and projected return
	Dashboard(ctx context.Context, userID uint64) (*DashboardData, error)
}
