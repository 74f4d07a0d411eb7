package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a point-of-sale record. Paid may be less than Total; the
// shortfall becomes a Debt row created in the same transaction.
type Sale struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	BusinessID uint            `gorm:"not null;index" json:"business_id"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	Paid       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"paid"`
	Customer   string          `gorm:"size:255" json:"customer"`
	Items      []SaleItem      `gorm:"foreignKey:SaleID" json:"items,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SaleItem is a line item on a sale.
type SaleItem struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	SaleID   uint            `gorm:"not null;index" json:"sale_id"`
	Product  string          `gorm:"not null;size:255" json:"product"`
	Quantity int             `gorm:"not null" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
}
