package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DebtStatus string

const (
	DebtPending DebtStatus = "pending"
	DebtPartial DebtStatus = "partial"
	DebtPaid    DebtStatus = "paid"
)

// Debt tracks what a customer still owes on a sale. PaymentAmount is the
// cumulative total of recorded payments; Status is derived from it.
type Debt struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	BusinessID    uint            `gorm:"not null;index" json:"business_id"`
	Customer      string          `gorm:"size:255" json:"customer"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	PaymentAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"payment_amount"`
	Status        DebtStatus      `gorm:"not null;size:20;default:'pending'" json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// DeriveDebtStatus computes the status for a debt with the given total
// amount and cumulative payments: paid once nothing remains, partial once
// any payment is recorded, pending otherwise.
func DeriveDebtStatus(amount, paymentAmount decimal.Decimal) DebtStatus {
	if amount.Sub(paymentAmount).LessThanOrEqual(decimal.Zero) {
		return DebtPaid
	}
	if paymentAmount.IsPositive() {
		return DebtPartial
	}
	return DebtPending
}
