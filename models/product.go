package models

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog item
type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name" example:"Canvas High Top"`
	Slug        string         `gorm:"unique;not null" json:"slug" example:"canvas-high-top"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price" example:"59.99"`
	Image       string         `json:"image"`
	Stock       int            `gorm:"not null;default:0" json:"stock"`
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationship
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// ProductResponse represents product data for API responses
type ProductResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Stock       int       `json:"stock"`
	CategoryID  uint      `json:"category_id"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToProductResponse converts Product model to ProductResponse
func (p *Product) ToProductResponse() ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		Category:    p.Category.Name,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
