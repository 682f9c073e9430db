package models

import (
	"time"

	"gorm.io/gorm"
)

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCancelled = "cancelled"
)

// Order represents a checked-out cart
type Order struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Number    string         `gorm:"unique;not null" json:"number"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	AddressID uint           `gorm:"not null" json:"address_id"`
	Status    string         `gorm:"not null;default:pending" json:"status"`
	Total     float64        `gorm:"not null" json:"total"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationship
	Items        []OrderItem   `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:OrderID" json:"transactions,omitempty"`
	Address      Address       `gorm:"foreignKey:AddressID" json:"address,omitempty"`
}

// OrderItem snapshots a product line at checkout time
type OrderItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	Name      string    `gorm:"not null" json:"name"`
	UnitPrice float64   `gorm:"not null" json:"unit_price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationship
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
