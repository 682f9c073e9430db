package models

import (
	"time"
)

// RolePermission represents the many-to-many relationship between roles and
// permissions. A (role, permission) pair exists at most once.
type RolePermission struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RoleID       uint      `gorm:"not null;uniqueIndex:idx_role_permissions_role_perm" json:"role_id"`
	PermissionID uint      `gorm:"not null;uniqueIndex:idx_role_permissions_role_perm" json:"permission_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationship
	Role       Role       `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Permission Permission `gorm:"foreignKey:PermissionID" json:"permission,omitempty"`
}
