package models

import (
	"time"
)

// Transaction statuses
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// Transaction records a payment attempt against an order
type Transaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	Reference string    `gorm:"unique;not null" json:"reference"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Status    string    `gorm:"not null;default:pending" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
