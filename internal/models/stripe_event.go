package models

import "time"

// StripeEvent is the idempotency ledger for webhook deliveries. The
// unique index on EventID makes the second insert of a duplicate
// delivery fail, which the processor treats as "already handled".
type StripeEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   string    `gorm:"not null;size:255;uniqueIndex" json:"event_id"`
	Type      string    `gorm:"size:100" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
