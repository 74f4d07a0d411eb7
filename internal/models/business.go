package models

import "time"

// Business is the tenant root. Every tenant-scoped row carries BusinessID.
//
// Subscription state lives directly on the business row: a business is
// entitled while its paid subscription is active (and not past its end
// date) or while its trial window is open. TrialEnd stays null until the
// first subscription check lazily provisions a 30-day trial.
type Business struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	Name                string     `gorm:"not null;size:255" json:"name"`
	ShopName            string     `gorm:"size:255" json:"shop_name"`
	Address             string     `gorm:"size:500" json:"address"`
	Phone               string     `gorm:"size:50" json:"phone"`
	LogoURL             string     `gorm:"size:500" json:"logo_url"`
	SubscriptionActive  bool       `gorm:"not null;default:false" json:"subscription_active"`
	TrialEnd            *time.Time `json:"trial_end"`
	SubscriptionEndDate *time.Time `json:"subscription_end_date"`
	StripeCustomerID    *string    `gorm:"size:255;index" json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
