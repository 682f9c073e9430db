package middleware

import (
	"net/http"

	"storefront-backend/utilities"

	"github.com/gin-gonic/gin"
)

// SessionGuard protects a path prefix by checking that a session cookie is
// present, redirecting to the login page when it isn't. It checks presence
// only: signature and expiry verification is left to AuthMiddleware where the
// identity is actually used, keeping this check cheap enough to run on every
// request under the prefix.
func SessionGuard(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hasSessionCookie(c) {
			c.Next()
			return
		}

		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
	}
}

func hasSessionCookie(c *gin.Context) bool {
	for _, name := range []string{utilities.SecureSessionCookieName, utilities.SessionCookieName} {
		if cookie, err := c.Cookie(name); err == nil && cookie != "" {
			return true
		}
	}
	return false
}
