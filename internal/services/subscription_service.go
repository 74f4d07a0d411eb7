package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/kwadjo-mensah/shopledger-backend/internal/config"
	"github.com/kwadjo-mensah/shopledger-backend/internal/models"
	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"gorm.io/gorm"
)

var (
	ErrBusinessNotFound      = errors.New("business not found")
	ErrEventAlreadyProcessed = errors.New("webhook event already processed")
)

const trialDays = 30

// SubscriptionService owns the entitlement state machine and the billing
// event processor.
type SubscriptionService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewSubscriptionService(db *gorm.DB, cfg *config.Config) *SubscriptionService {
	stripe.Key = cfg.StripeSecretKey
	return &SubscriptionService{db: db, cfg: cfg}
}

// Check evaluates the entitlement for a business against wall-clock
// time. It lazily provisions the 30-day trial on first reference and
// persists the expiry flip for stale paid subscriptions. A missing
// business row is a hard deny, never a pass-through.
func (s *SubscriptionService) Check(businessID uint) (Entitlement, error) {
	var biz models.Business
	if err := s.db.First(&biz, businessID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Entitlement{}, ErrBusinessNotFound
		}
		return Entitlement{}, err
	}

	now := time.Now()

	if biz.TrialEnd == nil {
		// Lazy trial provisioning. The trial_end IS NULL predicate makes
		// concurrent first accesses converge on a single window instead of
		// each pushing it later.
		trialEnd := now.AddDate(0, 0, trialDays)
		res := s.db.Model(&models.Business{}).
			Where("id = ? AND trial_end IS NULL", biz.ID).
			Update("trial_end", trialEnd)
		switch {
		case res.Error != nil:
			// The provisioning write is a side effect of a read-style check;
			// the grant decision below still runs on the snapshot we hold.
			slog.Error("trial provisioning failed", "business_id", biz.ID, "error", res.Error)
		case res.RowsAffected > 0:
			biz.TrialEnd = &trialEnd
			slog.Info("trial auto-provisioned", "business_id", biz.ID, "trial_end", trialEnd)
		default:
			// A concurrent request won the race; take its window.
			if err := s.db.First(&biz, biz.ID).Error; err != nil {
				return Entitlement{}, err
			}
		}
	}

	ent := EvaluateEntitlement(now, &biz)

	if ent.Expired && biz.SubscriptionActive {
		if err := s.db.Model(&biz).Update("subscription_active", false).Error; err != nil {
			slog.Error("failed to persist subscription expiry", "business_id", biz.ID, "error", err)
		}
	}

	return ent, nil
}

// CreateCheckout starts a Stripe hosted checkout session. The business
// id travels as client_reference_id so the completion webhook can route
// back to the tenant.
func (s *SubscriptionService) CreateCheckout(businessID uint) (string, error) {
	var biz models.Business
	if err := s.db.First(&biz, businessID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrBusinessNotFound
		}
		return "", err
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		ClientReferenceID:  stripe.String(strconv.FormatUint(uint64(biz.ID), 10)),
		SuccessURL:         stripe.String(s.cfg.FrontendURL + "/subscription?success=true"),
		CancelURL:          stripe.String(s.cfg.FrontendURL + "/subscription?cancel=true"),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String("usd"),
				UnitAmount: stripe.Int64(s.cfg.StripePriceCents),
				Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
					Interval: stripe.String("month"),
				},
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("ShopLedger Pro"),
				},
			},
			Quantity: stripe.Int64(1),
		}},
	}
	if biz.StripeCustomerID != nil {
		params.Customer = stripe.String(*biz.StripeCustomerID)
	}

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return sess.URL, nil
}

// Minimal payload views; we only decode the fields we act on.
type checkoutSessionPayload struct {
	ClientReferenceID string `json:"client_reference_id"`
	Customer          string `json:"customer"`
}

type invoicePayload struct {
	Customer   string `json:"customer"`
	PeriodEnd  int64  `json:"period_end"`
	AmountPaid int64  `json:"amount_paid"`
}

type subscriptionPayload struct {
	Customer string `json:"customer"`
}

// ProcessWebhookEvent applies a verified Stripe event exactly once. The
// ledger insert and the state mutation share one transaction: a
// duplicate event id fails the insert and the whole unit rolls back,
// and any failure after the insert rolls the ledger row back too, so
// Stripe's redelivery can safely retry.
func (s *SubscriptionService) ProcessWebhookEvent(event *stripe.Event) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		ledger := models.StripeEvent{EventID: event.ID, Type: string(event.Type)}
		if err := tx.Create(&ledger).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEventAlreadyProcessed
			}
			return fmt.Errorf("record webhook event: %w", err)
		}
		return s.applyEvent(tx, event)
	})
}

func (s *SubscriptionService) applyEvent(tx *gorm.DB, event *stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var sess checkoutSessionPayload
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return fmt.Errorf("decode checkout session: %w", err)
		}
		if sess.ClientReferenceID == "" {
			return nil
		}
		businessID, err := strconv.ParseUint(sess.ClientReferenceID, 10, 64)
		if err != nil {
			return fmt.Errorf("bad client_reference_id %q: %w", sess.ClientReferenceID, err)
		}
		updates := map[string]interface{}{"subscription_active": true}
		if sess.Customer != "" {
			updates["stripe_customer_id"] = sess.Customer
		}
		return tx.Model(&models.Business{}).Where("id = ?", uint(businessID)).Updates(updates).Error

	case "invoice.payment_succeeded":
		var inv invoicePayload
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			return fmt.Errorf("decode invoice: %w", err)
		}
		if inv.Customer == "" {
			return nil
		}
		periodEnd := time.Unix(inv.PeriodEnd, 0)
		if err := tx.Model(&models.Business{}).
			Where("stripe_customer_id = ?", inv.Customer).
			Updates(map[string]interface{}{
				"subscription_active":   true,
				"subscription_end_date": periodEnd,
			}).Error; err != nil {
			return fmt.Errorf("advance subscription: %w", err)
		}
		var biz models.Business
		if err := tx.Where("stripe_customer_id = ?", inv.Customer).First(&biz).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Customer unknown to us; ack so Stripe stops redelivering.
				return nil
			}
			return err
		}
		payment := models.SubscriptionPayment{
			BusinessID:    biz.ID,
			StripeEventID: event.ID,
			Amount:        decimal.NewFromInt(inv.AmountPaid).Div(decimal.NewFromInt(100)),
			PeriodEnd:     periodEnd,
		}
		return tx.Create(&payment).Error

	case "invoice.payment_failed":
		var inv invoicePayload
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			return fmt.Errorf("decode invoice: %w", err)
		}
		return deactivateByCustomer(tx, inv.Customer)

	case "customer.subscription.deleted":
		var sub subscriptionPayload
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("decode subscription: %w", err)
		}
		return deactivateByCustomer(tx, sub.Customer)

	default:
		// Unhandled kinds keep their ledger row so redeliveries stay no-ops.
		return nil
	}
}

func deactivateByCustomer(tx *gorm.DB, customerID string) error {
	if customerID == "" {
		return nil
	}
	return tx.Model(&models.Business{}).
		Where("stripe_customer_id = ?", customerID).
		Update("subscription_active", false).Error
}
