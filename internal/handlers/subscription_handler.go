package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/kwadjo-mensah/shopledger-backend/internal/dto"
	"github.com/kwadjo-mensah/shopledger-backend/internal/services"
	"github.com/kwadjo-mensah/shopledger-backend/internal/tenant"
)

type SubscriptionHandler struct {
	subscriptionService *services.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Status reports the caller's current entitlement. The check itself may
// provision the trial window or persist an expiry flip as side effects.
func (h *SubscriptionHandler) Status(c *fiber.Ctx) error {
	businessID, err := tenant.GetBusinessID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	ent, err := h.subscriptionService.Check(businessID)
	if err != nil {
		if errors.Is(err, services.ErrBusinessNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Business not found",
			})
		}
		slog.Error("subscription status failed", "business_id", businessID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch subscription",
		})
	}

	return c.JSON(dto.SubscriptionStatusResponse{
		Active:        ent.Active,
		Expired:       ent.Expired,
		DaysRemaining: ent.DaysRemaining,
		EndDate:       ent.EndDate,
		IsTrial:       ent.IsTrial,
		Message:       ent.Message(),
	})
}

// CreateCheckout returns the hosted checkout URL for upgrading.
func (h *SubscriptionHandler) CreateCheckout(c *fiber.Ctx) error {
	businessID, err := tenant.GetBusinessID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	url, err := h.subscriptionService.CreateCheckout(businessID)
	if err != nil {
		if errors.Is(err, services.ErrBusinessNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Business not found",
			})
		}
		slog.Error("checkout creation failed", "business_id", businessID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create checkout session",
		})
	}

	return c.JSON(dto.CheckoutResponse{URL: url})
}
