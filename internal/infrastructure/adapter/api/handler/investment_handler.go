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

// InvestmentHandler handles investment submissions
type InvestmentHandler struct {
	investmentUseCase usecase.InvestmentUseCase
	logger            coreport.Logger
}

// NewInvestmentHandler creates a new investment handler instance
func NewInvestmentHandler(
	investmentUseCase usecase.InvestmentUseCase,
	logger coreport.Logger,
) *InvestmentHandler {
	return &InvestmentHandler{
		investmentUseCase: investmentUseCase,
		logger:            logger,
	}
}

// Invest handles POST /invest
func (h *InvestmentHandler) Invest(c *gin.Context) {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	req := usecase.SubmitInvestmentRequest{
		UserID:        claims.UserID,
		FirmID:        c.PostForm("firm_id"),
		TransactionID: c.PostForm("transaction_id"),
		Amount:        c.PostForm("amount"),
	}

	_, err := h.investmentUseCase.Submit(c.Request.Context(), req)
	if err != nil {
		middleware.SetFlash(c, investFlash(err))
		c.Redirect(http.StatusSeeOther, "/opportunities")
		return
	}

	middleware.SetFlash(c, "Investment submitted and marked pending.")
	c.Redirect(http.StatusSeeOther, "/opportunities")
}

// investFlash maps submission failures to the user-facing message
func investFlash(err error) string {
	switch {
	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrNegativeAmount):
		return "Invalid amount."
	case domainerr.IsValidationError(err), errors.Is(err, domainerr.ErrFirmNotFound):
		return "Please complete all fields for investment."
	default:
		return "Something went wrong. Please try again."
	}
}
