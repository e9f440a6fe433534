package handler

import (
	"errors"
	"net/http"
	"strconv"

	domainerr "github.com/multinvest/platform/internal/domain/error"
	coreport "github.com/multinvest/platform/internal/domain/port/core"
	"github.com/multinvest/platform/internal/domain/port/usecase"
	"github.com/multinvest/platform/internal/infrastructure/adapter/api/dto"
	"github.com/multinvest/platform/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles the administrator pages and actions
type AdminHandler struct {
	adminUseCase      usecase.AdminUseCase
	authUseCase       usecase.AuthUseCase
	investmentUseCase usecase.InvestmentUseCase
	withdrawalUseCase usecase.WithdrawalUseCase
	logger            coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	adminUseCase usecase.AdminUseCase,
	authUseCase usecase.AuthUseCase,
	investmentUseCase usecase.InvestmentUseCase,
	withdrawalUseCase usecase.WithdrawalUseCase,
	logger coreport.Logger,
) *AdminHandler {
	return &AdminHandler{
		adminUseCase:      adminUseCase,
		authUseCase:       authUseCase,
		investmentUseCase: investmentUseCase,
		withdrawalUseCase: withdrawalUseCase,
		logger:            logger,
	}
}

// Overview handles GET /admin
func (h *AdminHandler) Overview(c *gin.Context) {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	overview, err := h.adminUseCase.Overview(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to build admin overview", map[string]any{
			"error": err.Error(),
		})
		middleware.SetFlash(c, "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	users := make([]dto.UserResponse, 0, len(overview.Users))
	for _, user := range overview.Users {
		users = append(users, *dto.FromUser(user))
	}

	var adminView *dto.UserResponse
	if admin, err := h.authUseCase.CurrentUser(c.Request.Context(), claims.UserID); err == nil {
		adminView = dto.FromUser(admin)
	}

	c.JSON(http.StatusOK, dto.AdminOverviewResponse{
		User:        adminView,
		Investments: dto.FromInvestmentRecords(overview.Investments),
		Users:       users,
		Withdrawals: dto.FromWithdrawalRecords(overview.Withdrawals),
		Flash:       middleware.TakeFlash(c),
	})
}

// parseID parses the :id path segment; 0 means malformed
func parseID(c *gin.Context) uint64 {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// ApproveInvestment handles GET /admin/approve_investment/:id.
// A missing investment is a no-op; the admin still gets a message.
func (h *AdminHandler) ApproveInvestment(c *gin.Context) {
	id := parseID(c)

	if err := h.investmentUseCase.Approve(c.Request.Context(), id); err != nil {
		middleware.SetFlash(c, approveFlash("Investment", err))
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	middleware.SetFlash(c, "Investment approved and balance credited.")
	c.Redirect(http.StatusFound, "/admin")
}

// ApproveWithdrawal handles GET /admin/approve_withdrawal/:id.
// The withdrawal's funds moved at submission; this only flips the status.
func (h *AdminHandler) ApproveWithdrawal(c *gin.Context) {
	id := parseID(c)

	if err := h.withdrawalUseCase.Approve(c.Request.Context(), id); err != nil {
		middleware.SetFlash(c, approveFlash("Withdrawal", err))
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	middleware.SetFlash(c, "Withdrawal approved.")
	c.Redirect(http.StatusFound, "/admin")
}

// approveFlash maps approval failures to the admin-facing message
func approveFlash(kind string, err error) string {
	switch {
	case domainerr.IsNotFoundError(err):
		return kind + " not found."
	case errors.Is(err, domainerr.ErrAlreadyCompleted):
		return kind + " was already approved."
	default:
		return "Something went wrong. Please try again."
	}
}

// DeleteUser handles GET /admin/delete_user/:id. Dependent investments and
// withdrawals are removed by the referential cascade.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id := parseID(c)

	if err := h.adminUseCase.DeleteUser(c.Request.Context(), id); err != nil {
		if domainerr.IsNotFoundError(err) {
			middleware.SetFlash(c, "User not found.")
		} else {
			middleware.SetFlash(c, "Something went wrong. Please try again.")
		}
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	middleware.SetFlash(c, "User deleted.")
	c.Redirect(http.StatusFound, "/admin")
}
