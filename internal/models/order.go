package models

import "time"

// Order records a supplier delivery. The matching inventory increment
// happens in the same transaction that creates the order.
type Order struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BusinessID uint      `gorm:"not null;index" json:"business_id"`
	Supplier   string    `gorm:"size:255" json:"supplier"`
	Product    string    `gorm:"not null;size:255" json:"product"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
}
