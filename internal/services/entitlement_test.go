package services

import (
	"testing"
	"time"

	"github.com/kwadjo-mensah/shopledger-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestEvaluateEntitlementTrialWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	trialEnd := now.Add(29 * 24 * time.Hour)

	biz := &models.Business{TrialEnd: timePtr(trialEnd)}
	ent := EvaluateEntitlement(now, biz)

	assert.True(t, ent.Active)
	assert.True(t, ent.IsTrial)
	assert.False(t, ent.Expired)
	assert.Equal(t, 29, ent.DaysRemaining)
	require.NotNil(t, ent.EndDate)
	assert.Equal(t, trialEnd, *ent.EndDate)
	assert.Nil(t, ent.Message())
}

func TestEvaluateEntitlementTrialLastInstant(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Access holds through the end instant itself and lapses just after.
	biz := &models.Business{TrialEnd: timePtr(now)}
	ent := EvaluateEntitlement(now, biz)
	assert.True(t, ent.Active)
	assert.Equal(t, 0, ent.DaysRemaining)

	ent = EvaluateEntitlement(now.Add(time.Second), biz)
	assert.False(t, ent.Active)
	assert.True(t, ent.Expired)
	assert.Equal(t, ExpiryTrial, ent.Lapsed)
	require.NotNil(t, ent.Message())
	assert.Equal(t, "Trial period has expired", *ent.Message())
}

func TestEvaluateEntitlementUnprovisionedTrialIsExpired(t *testing.T) {
	// A business with no trial window and no subscription has no access.
	// The caller is expected to provision the window before evaluating.
	now := time.Now()
	ent := EvaluateEntitlement(now, &models.Business{})

	assert.False(t, ent.Active)
	assert.True(t, ent.Expired)
	assert.Equal(t, ExpiryTrial, ent.Lapsed)
	assert.Nil(t, ent.EndDate)
}

func TestEvaluateEntitlementPaidActive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := now.Add(30*24*time.Hour + time.Hour)

	biz := &models.Business{
		SubscriptionActive:  true,
		SubscriptionEndDate: timePtr(end),
		TrialEnd:            timePtr(now.Add(-10 * 24 * time.Hour)),
	}
	ent := EvaluateEntitlement(now, biz)

	assert.True(t, ent.Active)
	assert.False(t, ent.IsTrial)
	// Partial days round up.
	assert.Equal(t, 31, ent.DaysRemaining)
}

func TestEvaluateEntitlementPaidWithoutEndDateNeverExpires(t *testing.T) {
	biz := &models.Business{SubscriptionActive: true}
	ent := EvaluateEntitlement(time.Now(), biz)

	assert.True(t, ent.Active)
	assert.False(t, ent.Expired)
	assert.Equal(t, 0, ent.DaysRemaining)
	assert.Nil(t, ent.EndDate)
}

func TestEvaluateEntitlementPaidPastEndDate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := now.Add(-time.Hour)

	// Flag still set; the evaluation reports Expired so the caller can
	// persist the flip.
	biz := &models.Business{
		SubscriptionActive:  true,
		SubscriptionEndDate: timePtr(end),
	}
	ent := EvaluateEntitlement(now, biz)

	assert.False(t, ent.Active)
	assert.True(t, ent.Expired)
	assert.Equal(t, ExpiryPaid, ent.Lapsed)
	require.NotNil(t, ent.Message())
	assert.Equal(t, "Subscription has expired", *ent.Message())
}

func TestEvaluateEntitlementLapsedPaidBeatsTrial(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// A business whose paid subscription was deactivated reports a paid
	// lapse even though its trial window is long gone too.
	biz := &models.Business{
		SubscriptionActive:  false,
		SubscriptionEndDate: timePtr(now.Add(-5 * 24 * time.Hour)),
		TrialEnd:            timePtr(now.Add(-60 * 24 * time.Hour)),
	}
	ent := EvaluateEntitlement(now, biz)

	assert.True(t, ent.Expired)
	assert.Equal(t, ExpiryPaid, ent.Lapsed)
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"past", now.Add(-time.Hour), 0},
		{"exactly now", now, 0},
		{"one hour", now.Add(time.Hour), 1},
		{"exactly one day", now.Add(24 * time.Hour), 1},
		{"one day and a minute", now.Add(24*time.Hour + time.Minute), 2},
		{"thirty days", now.Add(30 * 24 * time.Hour), 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daysUntil(now, tt.end))
		})
	}
}
