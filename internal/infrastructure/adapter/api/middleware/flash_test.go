package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlash(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("SetFlash writes the cookie", func(t *testing.T) {
		router := gin.New()
		router.GET("/set", func(c *gin.Context) {
			SetFlash(c, "Signup successful. Please log in.")
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/set", nil)
		router.ServeHTTP(w, req)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, FlashCookie, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("TakeFlash returns the message once and clears it", func(t *testing.T) {
		router := gin.New()
		router.GET("/take", func(c *gin.Context) {
			c.String(http.StatusOK, TakeFlash(c))
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/take", nil)
		req.AddCookie(&http.Cookie{Name: FlashCookie, Value: "Investment+submitted"})
		router.ServeHTTP(w, req)

		assert.Equal(t, "Investment submitted", w.Body.String())

		// The response clears the cookie
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, FlashCookie, cookies[0].Name)
		assert.Equal(t, "", cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("TakeFlash with no pending message", func(t *testing.T) {
		router := gin.New()
		router.GET("/take", func(c *gin.Context) {
			c.String(http.StatusOK, TakeFlash(c))
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/take", nil)
		router.ServeHTTP(w, req)

		assert.Empty(t, w.Body.String())
		assert.Empty(t, w.Result().Cookies())
	})
}
