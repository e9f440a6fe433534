package handler

import (
	"net/http"

	"github.com/multinvest/platform/internal/domain/entity"
	coreport "github.com/multinvest/platform/internal/domain/port/core"
	"github.com/multinvest/platform/internal/domain/port/usecase"
	"github.com/multinvest/platform/internal/infrastructure/adapter/api/dto"
	"github.com/multinvest/platform/internal/infrastructure/adapter/api/middleware"
	"github.com/multinvest/platform/internal/infrastructure/adapter/auth"
	"github.com/gin-gonic/gin"
)

// PageHandler serves the page-data endpoints
type PageHandler struct {
	authUseCase       usecase.AuthUseCase
	investmentUseCase usecase.InvestmentUseCase
	sessions          *auth.SessionManager
	logger            coreport.Logger
}

// NewPageHandler creates a new page handler instance
func NewPageHandler(
	authUseCase usecase.AuthUseCase,
	investmentUseCase usecase.InvestmentUseCase,
	sessions *auth.SessionManager,
	logger coreport.Logger,
) *PageHandler {
	return &PageHandler{
		authUseCase:       authUseCase,
		investmentUseCase: investmentUseCase,
		sessions:          sessions,
		logger:            logger,
	}
}

// optionalUser resolves the session cookie to a user when one is present.
// Public pages render for visitors and users alike.
func (h *PageHandler) optionalUser(c *gin.Context) *entity.User {
	claims := middleware.ParseSession(c, h.sessions)
	if claims == nil {
		return nil
	}
	user, err := h.authUseCase.CurrentUser(c.Request.Context(), claims.UserID)
	if err != nil {
		return nil
	}
	return user
}

// sessionUser resolves the claims stored by RequireUser to a fresh user row
func (h *PageHandler) sessionUser(c *gin.Context) (*entity.User, bool) {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		return nil, false
	}
	user, err := h.authUseCase.CurrentUser(c.Request.Context(), claims.UserID)
	if err != nil {
		// Session outlived the account; force a fresh login
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return nil, false
	}
	return user, true
}

// Index handles GET /
func (h *PageHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PageResponse{
		User:  dto.FromUser(h.optionalUser(c)),
		Flash: middleware.TakeFlash(c),
	})
}

// Contact handles GET /contact
func (h *PageHandler) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PageResponse{
		User:  dto.FromUser(h.optionalUser(c)),
		Flash: middleware.TakeFlash(c),
	})
}

// Opportunities handles GET /opportunities
func (h *PageHandler) Opportunities(c *gin.Context) {
	user, ok := h.sessionUser(c)
	if !ok {
		return
	}

	firms, err := h.investmentUseCase.ListFirms(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list firms", map[string]any{
			"error": err.Error(),
		})
		middleware.SetFlash(c, "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.OpportunitiesResponse{
		User:  dto.FromUser(user),
		Firms: dto.FromFirms(firms),
		Flash: middleware.TakeFlash(c),
	})
}

// Dashboard handles GET /dashboard
func (h *PageHandler) Dashboard(c *gin.Context) {
	user, ok := h.sessionUser(c)
	if !ok {
		return
	}

	data, err := h.investmentUseCase.Dashboard(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("Failed to build dashboard", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		middleware.SetFlash(c, "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.JSON(http.StatusOK, dto.FromDashboard(user, data, middleware.TakeFlash(c)))
}
