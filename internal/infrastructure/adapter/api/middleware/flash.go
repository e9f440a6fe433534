package middleware

import (
	"github.com/gin-gonic/gin"
)

// FlashCookie is the one-shot message cookie set on redirects and cleared on
// the next page render
const FlashCookie = "mi_flash"

// SetFlash stores a one-shot message for the next page render
func SetFlash(c *gin.Context, message string) {
	c.SetCookie(FlashCookie, message, 60, "/", "", false, true)
}

// TakeFlash returns the pending flash message, if any, and clears it
func TakeFlash(c *gin.Context) string {
	message, err := c.Cookie(FlashCookie)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(FlashCookie, "", -1, "/", "", false, true)
	return message
}
