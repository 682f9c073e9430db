package models

import (
	"time"

	"gorm.io/gorm"
)

// Address represents a user's shipping address
type Address struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	Label      string         `json:"label" example:"Home"`
	Line1      string         `gorm:"not null" json:"line1"`
	Line2      string         `json:"line2"`
	City       string         `gorm:"not null" json:"city"`
	State      string         `json:"state"`
	PostalCode string         `gorm:"not null" json:"postal_code"`
	Country    string         `gorm:"not null" json:"country"`
	Phone      string         `json:"phone"`
	IsDefault  bool           `gorm:"default:false" json:"is_default"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
