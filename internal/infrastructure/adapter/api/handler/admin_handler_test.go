package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/multinvest/platform/internal/domain/entity"
	"github.com/multinvest/platform/internal/domain/port/usecase"
	"github.com/multinvest/platform/internal/infrastructure/adapter/api/middleware"
	"github.com/multinvest/platform/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/multinvest/platform/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminOverviewHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Missing session claims redirect to login before any lookup", func(t *testing.T) {
		mockAdmin := usecasemocks.NewMockAdminUseCase(t)
		mockAuth := usecasemocks.NewMockAuthUseCase(t)
		h := NewAdminHandler(
			mockAdmin,
			mockAuth,
			usecasemocks.NewMockInvestmentUseCase(t),
			usecasemocks.NewMockWithdrawalUseCase(t),
			logger.NewNoopLogger(),
		)

		// Route registered without the admin guard to exercise the handler's
		// own claims check
		router := gin.New()
		router.GET("/admin", h.Overview)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("Admin session renders the overview", func(t *testing.T) {
		sessions := newTestSessions(t)
		token, err := sessions.Issue(&entity.User{ID: 1, Username: "Admin", IsAdmin: true})
		require.NoError(t, err)

		admin := &entity.User{ID: 1, Username: "Admin", Email: "admin@multinvest.com", IsAdmin: true}

		mockAdmin := usecasemocks.NewMockAdminUseCase(t)
		mockAdmin.EXPECT().Overview(mock.Anything).Return(&usecase.AdminOverview{
			Users: []*entity.User{admin},
		}, nil).Once()
		mockAuth := usecasemocks.NewMockAuthUseCase(t)
		mockAuth.EXPECT().CurrentUser(mock.Anything, uint64(1)).Return(admin, nil).Once()

		h := NewAdminHandler(
			mockAdmin,
			mockAuth,
			usecasemocks.NewMockInvestmentUseCase(t),
			usecasemocks.NewMockWithdrawalUseCase(t),
			logger.NewNoopLogger(),
		)

		router := gin.New()
		router.GET("/admin", middleware.RequireAdmin(sessions, logger.NewNoopLogger()), h.Overview)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Admin")
	})
}
