package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/kwadjo-mensah/shopledger-backend/internal/dto"
	"github.com/kwadjo-mensah/shopledger-backend/internal/services"
	"github.com/stripe/stripe-go/v82/webhook"
)

type WebhookHandler struct {
	subscriptionService *services.SubscriptionService
	webhookSecret       string
}

func NewWebhookHandler(subscriptionService *services.SubscriptionService, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{
		subscriptionService: subscriptionService,
		webhookSecret:       webhookSecret,
	}
}

// HandleStripe verifies the provider signature over the exact raw body
// bytes before anything is parsed or touched in the store. Signature
// failures are client-side rejections (400) so a permanently bad payload
// doesn't loop through redelivery; processing failures are 500 so Stripe
// retries, which the idempotency ledger makes safe.
func (h *WebhookHandler) HandleStripe(c *fiber.Ctx) error {
	if h.webhookSecret == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: true, Message: "Webhook secret not configured",
		})
	}

	payload := c.Body()
	sigHeader := c.Get("Stripe-Signature")
	if sigHeader == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Missing Stripe signature",
		})
	}

	event, err := webhook.ConstructEventWithOptions(payload, sigHeader, h.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		slog.Error("webhook signature verification failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid Stripe signature",
		})
	}

	if err := h.subscriptionService.ProcessWebhookEvent(&event); err != nil {
		if errors.Is(err, services.ErrEventAlreadyProcessed) {
			// Duplicate delivery; already applied, ack it.
			return c.JSON(fiber.Map{"received": true})
		}
		slog.Error("webhook processing failed", "event_id", event.ID, "event_type", event.Type, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to process webhook event",
		})
	}

	slog.Info("webhook processed", "event_id", event.ID, "event_type", event.Type)
	return c.JSON(fiber.Map{"received": true})
}
