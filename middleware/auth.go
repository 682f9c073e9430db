package middleware

import (
	"net/http"
	"strings"

	"storefront-backend/authz"
	"storefront-backend/config"
	"storefront-backend/utilities"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the session token and stores the authenticated
// identity in the request context. The token is read from the session cookie
// (secure variant first) or from the Authorization header.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			utilities.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", "missing session token")
			c.Abort()
			return
		}

		claims, err := utilities.ValidateToken(tokenString, cfg.JWTSecret)
		if err != nil {
			utilities.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired session", "invalid session token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("full_name", claims.FullName)
		c.Next()
	}
}

// CurrentIdentity rebuilds the session identity stored by AuthMiddleware
func CurrentIdentity(c *gin.Context) authz.Identity {
	return authz.Identity{
		ID:       c.GetUint("user_id"),
		Email:    c.GetString("email"),
		FullName: c.GetString("full_name"),
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(utilities.SecureSessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	if cookie, err := c.Cookie(utilities.SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
		return ""
	}
	return bearerToken[1]
}
