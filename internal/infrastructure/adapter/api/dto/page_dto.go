package dto

import (
	"time"

	"github.com/multinvest/platform/internal/domain/entity"
	"github.com/multinvest/platform/internal/domain/port/persistence"
	"github.com/multinvest/platform/internal/domain/port/usecase"
)

// UserResponse is the public view of a user
type UserResponse struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Balance  string `json:"balance"`
	IsAdmin  bool   `json:"is_admin"`
}

// FirmResponse is the public view of an investable firm
type FirmResponse struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// InvestmentResponse is the public view of an investment
type InvestmentResponse struct {
	ID            uint64    `json:"id"`
	FirmName      string    `json:"firm_name"`
	TransactionID string    `json:"transaction_id"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	Username      string    `json:"username,omitempty"`
	Email         string    `json:"email,omitempty"`
}

// WithdrawalResponse is the public view of a withdrawal
type WithdrawalResponse struct {
	ID            uint64    `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	Username      string    `json:"username,omitempty"`
	Email         string    `json:"email,omitempty"`
}

// PageResponse is the common envelope for static pages
type PageResponse struct {
	User  *UserResponse `json:"user,omitempty"`
	Flash string        `json:"flash,omitempty"`
}

// OpportunitiesResponse is the data behind the opportunities page
type OpportunitiesResponse struct {
	User  *UserResponse  `json:"user"`
	Firms []FirmResponse `json:"firms"`
	Flash string         `json:"flash,omitempty"`
}

// DashboardResponse is the data behind the dashboard page
type DashboardResponse struct {
	User            *UserResponse        `json:"user"`
	Investments     []InvestmentResponse `json:"investments"`
	Withdrawals     []WithdrawalResponse `json:"withdrawals"`
	CompletedTotal  string               `json:"completed_total"`
	ProjectedReturn string               `json:"projected_return"`
	Flash           string               `json:"flash,omitempty"`
}

// AdminOverviewResponse is the data behind the admin page
type AdminOverviewResponse struct {
	User        *UserResponse        `json:"user"`
	Investments []InvestmentResponse `json:"investments"`
	Users       []UserResponse       `json:"users"`
	Withdrawals []WithdrawalResponse `json:"withdrawals"`
	Flash       string               `json:"flash,omitempty"`
}

// FromUser converts a user entity to its public view
func FromUser(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Balance:  user.GetBalance(),
		IsAdmin:  user.IsAdmin,
	}
}

// FromFirms converts firm entities to their public views
func FromFirms(firms []*entity.Firm) []FirmResponse {
	out := make([]FirmResponse, 0, len(firms))
	for _, firm := range firms {
		out = append(out, FirmResponse{
			ID:          firm.ID,
			Name:        firm.Name,
			Description: firm.Description,
			ImageURL:    firm.ImageURL,
		})
	}
	return out
}

// FromInvestmentRecords converts joined investment records to their public views
func FromInvestmentRecords(records []persistence.InvestmentRecord) []InvestmentResponse {
	out := make([]InvestmentResponse, 0, len(records))
	for _, record := range records {
		out = append(out, InvestmentResponse{
			ID:            record.Investment.ID,
			FirmName:      record.FirmName,
			TransactionID: record.Investment.TransactionID,
			Amount:        record.Investment.GetAmount(),
			Status:        string(record.Investment.Status),
			CreatedAt:     record.Investment.CreatedAt,
			Username:      record.Username,
			Email:         record.Email,
		})
	}
	return out
}

// FromWithdrawals converts withdrawal entities to their public views
func FromWithdrawals(withdrawals []entity.Withdrawal) []WithdrawalResponse {
	out := make([]WithdrawalResponse, 0, len(withdrawals))
	for i := range withdrawals {
		w := &withdrawals[i]
		out = append(out, WithdrawalResponse{
			ID:            w.ID,
			WalletAddress: w.WalletAddress,
			Amount:        w.GetAmount(),
			Status:        string(w.Status),
			CreatedAt:     w.CreatedAt,
		})
	}
	return out
}

// FromWithdrawalRecords converts joined withdrawal records to their public views
func FromWithdrawalRecords(records []persistence.WithdrawalRecord) []WithdrawalResponse {
	out := make([]WithdrawalResponse, 0, len(records))
	for _, record := range records {
		out = append(out, WithdrawalResponse{
			ID:            record.Withdrawal.ID,
			WalletAddress: record.Withdrawal.WalletAddress,
			Amount:        record.Withdrawal.GetAmount(),
			Status:        string(record.Withdrawal.Status),
			CreatedAt:     record.Withdrawal.CreatedAt,
			Username:      record.Username,
			Email:         record.Email,
		})
	}
	return out
}

// FromDashboard converts dashboard aggregation to its page response
func FromDashboard(user *entity.User, data *usecase.DashboardData, flash string) DashboardResponse {
	return DashboardResponse{
		User:            FromUser(user),
		Investments:     FromInvestmentRecords(data.Investments),
		Withdrawals:     FromWithdrawals(data.Withdrawals),
		CompletedTotal:  data.CompletedTotal,
		ProjectedReturn: data.ProjectedReturn,
		Flash:           flash,
	}
}
