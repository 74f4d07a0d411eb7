package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/kwadjo-mensah/shopledger-backend/internal/dto"
	"github.com/kwadjo-mensah/shopledger-backend/internal/services"
	"github.com/kwadjo-mensah/shopledger-backend/internal/tenant"
)

type BusinessHandler struct {
	businessService *services.BusinessService
}

func NewBusinessHandler(businessService *services.BusinessService) *BusinessHandler {
	return &BusinessHandler{businessService: businessService}
}

func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	businessID, err := tenant.GetBusinessID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	biz, err := h.businessService.Get(businessID)
	if err != nil {
		if errors.Is(err, services.ErrBusinessNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Business not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch business",
		})
	}
	return c.JSON(biz)
}

func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	businessID, err := tenant.GetBusinessID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpdateBusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	biz, err := h.businessService.Update(businessID, &req)
	if err != nil {
		if errors.Is(err, services.ErrBusinessNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Business not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update business",
		})
	}
	return c.JSON(fiber.Map{"message": "Business updated", "business": biz})
}

// DeleteAccount removes the entire tenant. Owner only; the cascade in
// the service keeps partial deletion from ever being observable.
func (h *BusinessHandler) DeleteAccount(c *fiber.Ctx) error {
	businessID, err := tenant.GetBusinessID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if err := h.businessService.DeleteAccount(businessID); err != nil {
		slog.Error("account deletion failed", "business_id", businessID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete account",
		})
	}

	slog.Info("business account deleted", "business_id", businessID)
	return c.JSON(dto.MessageResponse{Message: "Account deleted successfully"})
}
