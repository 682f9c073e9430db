package models

import (
	"time"

	"gorm.io/gorm"
)

// Role represents a named capability bucket assigned to users
type Role struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"unique;not null" json:"name" example:"admin"`
	Guard       string         `json:"guard,omitempty" example:"web"`
	Description string         `json:"description" example:"Administrator role"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationship
	RolePermissions []RolePermission `gorm:"foreignKey:RoleID" json:"role_permissions,omitempty"`
}

// Well-known role names seeded by migrations
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// RoleResponse represents role data for API responses
type RoleResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Guard       string    `json:"guard,omitempty"`
	Description string    `json:"description"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToRoleResponse converts Role model to RoleResponse
func (r *Role) ToRoleResponse() RoleResponse {
	permissions := make([]string, len(r.RolePermissions))
	for i, rp := range r.RolePermissions {
		permissions[i] = rp.Permission.Name
	}

	return RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Guard:       r.Guard,
		Description: r.Description,
		Permissions: permissions,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
