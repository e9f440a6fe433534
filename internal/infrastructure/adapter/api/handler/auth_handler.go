package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/multinvest/platform/internal/domain/error"
	coreport "github.com/multinvest/platform/internal/domain/port/core"
	"github.com/multinvest/platform/internal/domain/port/usecase"
	"github.com/multinvest/platform/internal/infrastructure/adapter/api/dto"
	"github.com/multinvest/platform/internal/infrastructure/adapter/api/middleware"
	"github.com/multinvest/platform/internal/infrastructure/adapter/auth"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, login and logout
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	sessions    *auth.SessionManager
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	authUseCase usecase.AuthUseCase,
	sessions *auth.SessionManager,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		sessions:    sessions,
		logger:      logger,
	}
}

// SignupPage handles GET /signup
func (h *AuthHandler) SignupPage(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PageResponse{
		Flash: middleware.TakeFlash(c),
	})
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	req := usecase.SignupRequest{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		Confirm:  c.PostForm("confirm_password"),
	}

	_, err := h.authUseCase.Signup(c.Request.Context(), req)
	if err != nil {
		middleware.SetFlash(c, signupFlash(err))
		c.Redirect(http.StatusSeeOther, "/signup")
		return
	}

	middleware.SetFlash(c, "Signup successful. Please log in.")
	c.Redirect(http.StatusSeeOther, "/login")
}

// signupFlash maps signup failures to the user-facing message
func signupFlash(err error) string {
	switch {
	case errors.Is(err, domainerr.ErrInvalidEmail):
		return "Invalid email address."
	case errors.Is(err, domainerr.ErrWeakPassword):
		return "Password must be at least 8 characters long and contain uppercase, lowercase, and digits."
	case errors.Is(err, domainerr.ErrPasswordMismatch):
		return "Passwords do not match."
	case domainerr.IsValidationError(err):
		return "All fields are required."
	case errors.Is(err, domainerr.ErrDuplicateEmail):
		return "Email already registered."
	default:
		return "An error occurred during signup."
	}
}

// LoginPage handles GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PageResponse{
		Flash: middleware.TakeFlash(c),
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.authUseCase.Login(c.Request.Context(), email, password)
	if err != nil {
		middleware.SetFlash(c, "Invalid credentials")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	token, err := h.sessions.Issue(user)
	if err != nil {
		h.logger.Error("Failed to issue session token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		middleware.SetFlash(c, "Something went wrong. Please try again.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout handles GET /logout. The session cookie is cleared unconditionally.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
