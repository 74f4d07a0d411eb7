package models

import "time"

// Customer is an optional address-book entry; sales and debts reference
// customers by label so walk-ins don't require a row here.
type Customer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BusinessID uint      `gorm:"not null;index" json:"business_id"`
	Name       string    `gorm:"not null;size:255" json:"name"`
	Phone      string    `gorm:"size:50" json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
