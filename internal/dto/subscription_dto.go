package dto

import "time"

// SubscriptionStatusResponse mirrors what the entitlement engine derives
// from the business row at evaluation time.
type SubscriptionStatusResponse struct {
	Active        bool       `json:"active"`
	Expired       bool       `json:"expired"`
	DaysRemaining int        `json:"daysRemaining"`
	EndDate       *time.Time `json:"endDate"`
	IsTrial       bool       `json:"isTrial"`
	Message       *string    `json:"message"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}
