package models

import "time"

// InventoryItem holds stock on hand for one product. Product is unique
// per business; supplier receipts increment Quantity in place.
type InventoryItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BusinessID uint      `gorm:"not null;uniqueIndex:idx_inventory_business_product" json:"business_id"`
	Product    string    `gorm:"not null;size:255;uniqueIndex:idx_inventory_business_product" json:"product"`
	Quantity   int       `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
