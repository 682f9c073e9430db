package middleware

import (
	"errors"
	"net/http"
	"strings"

	"storefront-backend/authz"
	"storefront-backend/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireRoles checks that the authenticated user currently holds any of the
// required roles. Roles are resolved from the database on every request, not
// read from token claims, so promotions and revocations take effect on the
// next call without re-login.
func RequireRoles(db *gorm.DB, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, err := authz.ResolveRoles(db, CurrentIdentity(c))
		if err != nil {
			if errors.Is(err, authz.ErrUserNotFound) {
				// A deleted user's token is no longer proof of anything
				utilities.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", "unknown user")
				c.Abort()
				return
			}
			utilities.ErrorResponse(c, http.StatusInternalServerError, "Failed to resolve roles", "internal error")
			c.Abort()
			return
		}

		hasRole := false
		for _, requiredRole := range requiredRoles {
			for _, userRole := range roles {
				if strings.EqualFold(userRole, requiredRole) {
					hasRole = true
					break
				}
			}
			if hasRole {
				break
			}
		}

		if !hasRole {
			utilities.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions", "access denied")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin for endpoints restricted to administrators
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return RequireRoles(db, "admin")
}
