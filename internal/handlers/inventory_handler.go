package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kwadjo-mensah/shopledger-backend/internal/dto"
	"github.com/kwadjo-mensah/shopledger-backend/internal/services"
	"github.com/kwadjo-mensah/shopledger-backend/internal/tenant"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) RecordSupplierOrder(c *fiber.Ctx) error {
	businessID, err := tenant.GetBusinessID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SupplierOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	item, err := h.inventoryService.RecordSupplierOrder(businessID, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update inventory",
		})
	}

	return c.JSON(item)
}

func (h *InventoryHandler) List(c *fiber.Ctx) error {
	businessID, err := tenant.GetBusinessID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	items, err := h.inventoryService.List(businessID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch inventory",
		})
	}
	return c.JSON(fiber.Map{"data": items})
}
