package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/kwadjo-mensah/shopledger-backend/internal/dto"
	"github.com/kwadjo-mensah/shopledger-backend/internal/services"
	"github.com/kwadjo-mensah/shopledger-backend/internal/tenant"
)

// SubscriptionRequired gates a route on the tenant's entitlement,
// evaluated fresh on every request. Denials use 402 so clients can tell
// "pay up" apart from the 401/403 auth failures, and the message says
// whether the trial or the paid subscription lapsed. A missing business
// row denies; the gate never fails open on the final decision.
func SubscriptionRequired(subscriptions *services.SubscriptionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		businessID, err := tenant.GetBusinessID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized",
			})
		}

		ent, err := subscriptions.Check(businessID)
		if err != nil {
			if errors.Is(err, services.ErrBusinessNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
					Error:   true,
					Message: "Business not found",
				})
			}
			slog.Error("subscription check failed", "business_id", businessID, "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Subscription check temporarily unavailable",
			})
		}

		if !ent.Active {
			msg := "Subscription expired"
			if m := ent.Message(); m != nil {
				msg = *m
			}
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{
				Error:   true,
				Message: msg,
			})
		}

		return c.Next()
	}
}
