package services

import (
	"math"
	"time"

	"github.com/kwadjo-mensah/shopledger-backend/internal/models"
)

// ExpiryKind names which access path lapsed, for client messaging.
type ExpiryKind string

const (
	ExpiryNone  ExpiryKind = ""
	ExpiryTrial ExpiryKind = "trial"
	ExpiryPaid  ExpiryKind = "paid"
)

// Entitlement is the access decision for one business at one instant.
type Entitlement struct {
	Active        bool
	Expired       bool
	IsTrial       bool
	EndDate       *time.Time
	DaysRemaining int
	Lapsed        ExpiryKind
}

// EvaluateEntitlement derives the access decision from a business
// snapshot. It is a pure function of (now, biz) and is recomputed on
// every gated request from a fresh read; it must never be memoized
// across requests.
//
// Grant rules: an active paid subscription grants access until its end
// date passes (a nil end date never expires); otherwise an open trial
// window grants access. A paid subscription past its end date reports
// Expired so the caller can persist the flag flip.
func EvaluateEntitlement(now time.Time, biz *models.Business) Entitlement {
	if biz.SubscriptionActive && biz.SubscriptionEndDate != nil && now.After(*biz.SubscriptionEndDate) {
		return Entitlement{Expired: true, EndDate: biz.SubscriptionEndDate, Lapsed: ExpiryPaid}
	}

	if biz.SubscriptionActive {
		days := 0
		if biz.SubscriptionEndDate != nil {
			days = daysUntil(now, *biz.SubscriptionEndDate)
		}
		return Entitlement{Active: true, EndDate: biz.SubscriptionEndDate, DaysRemaining: days}
	}

	if biz.TrialEnd != nil && !now.After(*biz.TrialEnd) {
		return Entitlement{
			Active:        true,
			IsTrial:       true,
			EndDate:       biz.TrialEnd,
			DaysRemaining: daysUntil(now, *biz.TrialEnd),
		}
	}

	lapsed := ExpiryTrial
	endDate := biz.TrialEnd
	if biz.SubscriptionEndDate != nil {
		lapsed = ExpiryPaid
		endDate = biz.SubscriptionEndDate
	}
	return Entitlement{Expired: true, EndDate: endDate, Lapsed: lapsed}
}

// Message returns the client-facing denial message, nil when access is
// granted.
func (e Entitlement) Message() *string {
	if !e.Expired {
		return nil
	}
	msg := "Trial period has expired"
	if e.Lapsed == ExpiryPaid {
		msg = "Subscription has expired"
	}
	return &msg
}

func daysUntil(now, end time.Time) int {
	d := end.Sub(now)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}
