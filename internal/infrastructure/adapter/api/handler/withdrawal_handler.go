package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/multinvest/platform/internal/domain/error"
	coreport "github.com/multinvest/platform/internal/domain/port/core"
	"github.com/multinvest/platform/internal/domain/port/usecase"
	"github.com/multinvest/platform/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// WithdrawalHandler handles withdrawal submissions
type WithdrawalHandler struct {
	withdrawalUseCase usecase.WithdrawalUseCase
	logger            coreport.Logger
}

// NewWithdrawalHandler creates a new withdrawal handler instance
func NewWithdrawalHandler(
	withdrawalUseCase usecase.WithdrawalUseCase,
	logger coreport.Logger,
) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalUseCase: withdrawalUseCase,
		logger:            logger,
	}
}

// Withdraw handles POST /withdraw. The user's balance is debited immediately;
// approval later only flips the status.
func (h *WithdrawalHandler) Withdraw(c *gin.Context) {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	req := usecase.SubmitWithdrawalRequest{
		UserID:        claims.UserID,
		WalletAddress: c.PostForm("wallet_address"),
		Amount:        c.PostForm("amount"),
	}

	_, err := h.withdrawalUseCase.Submit(c.Request.Context(), req)
	if err != nil {
		middleware.SetFlash(c, withdrawFlash(err))
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	middleware.SetFlash(c, "Withdrawal request submitted and marked pending.")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// withdrawFlash maps submission failures to the user-facing message
func withdrawFlash(err error) string {
	switch {
	case errors.Is(err, domainerr.ErrInsufficientBalance):
		return "Insufficient balance for this withdrawal."
	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrNegativeAmount):
		return "Invalid amount."
	case domainerr.IsValidationError(err):
		return "Please complete all fields for withdrawal."
	default:
		return "Something went wrong. Please try again."
	}
}
