package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionPayment is one settled invoice for a business, recorded
// when Stripe reports a successful payment.
type SubscriptionPayment struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	BusinessID    uint            `gorm:"not null;index" json:"business_id"`
	StripeEventID string          `gorm:"size:255" json:"stripe_event_id"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	PeriodEnd     time.Time       `json:"period_end"`
	CreatedAt     time.Time       `json:"created_at"`
}
