package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups products for storefront browsing
type Category struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"unique;not null" json:"name" example:"Sneakers"`
	Slug      string         `gorm:"unique;not null" json:"slug" example:"sneakers"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
