package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/multinvest/platform/internal/domain/entity"
	errs "github.com/multinvest/platform/internal/domain/error"
	"github.com/multinvest/platform/internal/domain/port/usecase"
	"github.com/multinvest/platform/internal/infrastructure/adapter/api/middleware"
	"github.com/multinvest/platform/internal/infrastructure/adapter/auth"
	"github.com/multinvest/platform/internal/infrastructure/adapter/logger"
	coremocks "github.com/multinvest/platform/mocks/port/core"
	usecasemocks "github.com/multinvest/platform/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSessions(t *testing.T) *auth.SessionManager {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()
	return auth.NewSessionManager("test-secret-for-sessions", time.Hour, mockTime)
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func flashValue(t *testing.T, w *httptest.ResponseRecorder) string {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.FlashCookie {
			value, err := url.QueryUnescape(cookie.Value)
			require.NoError(t, err)
			return value
		}
	}
	return ""
}

func TestSignupHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T, authUseCase usecase.AuthUseCase) *gin.Engine {
		h := NewAuthHandler(authUseCase, newTestSessions(t), logger.NewNoopLogger())
		router := gin.New()
		router.GET("/signup", h.SignupPage)
		router.POST("/signup", h.Signup)
		return router
	}

	form := url.Values{
		"username":         {"alice"},
		"email":            {"alice@example.com"},
		"password":         {"Passw0rd"},
		"confirm_password": {"Passw0rd"},
	}

	t.Run("Successful signup redirects to login", func(t *testing.T) {
		mockAuth := usecasemocks.NewMockAuthUseCase(t)
		mockAuth.EXPECT().Signup(mock.Anything, usecase.SignupRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "Passw0rd",
			Confirm:  "Passw0rd",
		}).Return(&entity.User{ID: 11}, nil).Once()

		w := postForm(newRouter(t, mockAuth), "/signup", form)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.Equal(t, "Signup successful. Please log in.", flashValue(t, w))
	})

	t.Run("Failures map to their flash messages", func(t *testing.T) {
		testCases := []struct {
			name    string
			err     error
			message string
		}{
			{"Invalid email", errs.ErrInvalidEmail, "Invalid email address."},
			{"Weak password", errs.ErrWeakPassword, "Password must be at least 8 characters long and contain uppercase, lowercase, and digits."},
			{"Password mismatch", errs.ErrPasswordMismatch, "Passwords do not match."},
			{"Missing fields", errs.NewValidationError("form", "all fields are required"), "All fields are required."},
			{"Duplicate email", errs.ErrDuplicateEmail, "Email already registered."},
			{"Unexpected failure", errs.ErrInternalServer, "An error occurred during signup."},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				mockAuth := usecasemocks.NewMockAuthUseCase(t)
				mockAuth.EXPECT().Signup(mock.Anything, mock.Anything).Return(nil, tc.err).Once()

				w := postForm(newRouter(t, mockAuth), "/signup", form)

				assert.Equal(t, http.StatusSeeOther, w.Code)
				assert.Equal(t, "/signup", w.Header().Get("Location"))
				assert.Equal(t, tc.message, flashValue(t, w))
			})
		}
	})
}

func TestLoginHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	form := url.Values{
		"email":    {"alice@example.com"},
		"password": {"Passw0rd"},
	}

	t.Run("Successful login sets the session cookie", func(t *testing.T) {
		mockAuth := usecasemocks.NewMockAuthUseCase(t)
		mockAuth.EXPECT().Login(mock.Anything, "alice@example.com", "Passw0rd").
			Return(&entity.User{ID: 11}, nil).Once()

		h := NewAuthHandler(mockAuth, newTestSessions(t), logger.NewNoopLogger())
		router := gin.New()
		router.POST("/login", h.Login)

		w := postForm(router, "/login", form)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))

		var sessionCookie *http.Cookie
		for _, cookie := range w.Result().Cookies() {
			if cookie.Name == middleware.SessionCookie {
				sessionCookie = cookie
			}
		}
		require.NotNil(t, sessionCookie)
		assert.NotEmpty(t, sessionCookie.Value)
		assert.True(t, sessionCookie.HttpOnly)
	})

	t.Run("Failed login flashes invalid credentials", func(t *testing.T) {
		mockAuth := usecasemocks.NewMockAuthUseCase(t)
		mockAuth.EXPECT().Login(mock.Anything, "alice@example.com", "Passw0rd").
			Return(nil, errs.ErrInvalidCredentials).Once()

		h := NewAuthHandler(mockAuth, newTestSessions(t), logger.NewNoopLogger())
		router := gin.New()
		router.POST("/login", h.Login)

		w := postForm(router, "/login", form)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.Equal(t, "Invalid credentials", flashValue(t, w))
	})
}

func TestLogoutHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockAuth := usecasemocks.NewMockAuthUseCase(t)
	h := NewAuthHandler(mockAuth, newTestSessions(t), logger.NewNoopLogger())
	router := gin.New()
	router.GET("/logout", h.Logout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
