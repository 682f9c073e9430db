package authz

import (
	"errors"
	"strings"

	"storefront-backend/models"

	"gorm.io/gorm"
)

// ResolveRoles expands a session identity into the user's current role names.
// Resolution happens per request, never from token claims, so role mutations
// are visible on the next check without forcing re-login. A missing user
// (deleted after token issuance) yields ErrUserNotFound; callers must treat
// that as unauthenticated, not as an empty role set.
func ResolveRoles(db *gorm.DB, identity Identity) ([]string, error) {
	if err := db.First(&models.User{}, identity.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var names []string
	err := db.Model(&models.Role{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", identity.ID).
		Order("roles.id ASC").
		Pluck("roles.name", &names).Error
	if err != nil {
		return nil, err
	}

	return names, nil
}

// IsAdmin reports whether the role set carries the admin capability.
// Comparison is case-insensitive, so "Admin" qualifies.
func IsAdmin(roles []string) bool {
	for _, role := range roles {
		if strings.EqualFold(role, models.RoleAdmin) {
			return true
		}
	}
	return false
}
