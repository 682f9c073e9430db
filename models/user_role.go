package models

import (
	"time"
)

// UserRole represents the many-to-many relationship between users and roles.
// A user holds each role at most once, enforced by the composite unique index.
type UserRole struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_roles_user_role" json:"user_id"`
	RoleID    uint      `gorm:"not null;uniqueIndex:idx_user_roles_user_role" json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationship
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}
