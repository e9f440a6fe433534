package middleware

import (
	"net/http"

	coreport "github.com/multinvest/platform/internal/domain/port/core"
	"github.com/multinvest/platform/internal/infrastructure/adapter/auth"
	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie carries the signed session token
	SessionCookie = "mi_session"

	// claimsContextKey is where the parsed session claims live in the
	// request context
	claimsContextKey = "sessionClaims"
)

// SessionClaims returns the parsed session claims stored by RequireUser or
// RequireAdmin
func SessionClaims(c *gin.Context) (*auth.SessionClaims, bool) {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.SessionClaims)
	return claims, ok
}

// ParseSession resolves the session cookie to claims without enforcing
// authentication. Used by pages that render for both visitors and users.
func ParseSession(c *gin.Context, sessions *auth.SessionManager) *auth.SessionClaims {
	token, err := c.Cookie(SessionCookie)
	if err != nil || token == "" {
		return nil
	}
	claims, err := sessions.Parse(token)
	if err != nil {
		return nil
	}
	return claims
}

// RequireUser redirects to the login page when the request carries no valid
// session. On success the claims are stored in the request context.
func RequireUser(sessions *auth.SessionManager, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ParseSession(c, sessions)
		if claims == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// RequireAdmin redirects to the login page when the request carries no valid
// admin session. Non-admin callers are redirected without the action running
// and without leaking whether the resource exists.
func RequireAdmin(sessions *auth.SessionManager, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ParseSession(c, sessions)
		if claims == nil || !claims.IsAdmin {
			if claims != nil {
				logger.Warn("Non-admin session attempted admin action", map[string]any{
					"user_id": claims.UserID,
					"path":    c.Request.URL.Path,
				})
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}
