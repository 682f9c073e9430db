package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User represents a registered shopper or administrator
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"unique;not null" json:"username" example:"john_doe"`
	Email     string         `gorm:"unique;not null" json:"email" example:"john@example.com"`
	Password  string         `gorm:"not null" json:"-"`
	FullName  string         `json:"full_name" example:"John Doe"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationship
	UserRoles []UserRole `gorm:"foreignKey:UserID" json:"user_roles,omitempty"`
}

// UserResponse represents user data for API responses
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converts User model to UserResponse
func (u *User) ToUserResponse() UserResponse {
	roles := make([]string, len(u.UserRoles))
	for i, ur := range u.UserRoles {
		roles[i] = ur.Role.Name
	}

	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// HasRole checks if user has a specific role (case-insensitive)
func (u *User) HasRole(roleName string) bool {
	for _, userRole := range u.UserRoles {
		if strings.EqualFold(userRole.Role.Name, roleName) {
			return true
		}
	}
	return false
}
