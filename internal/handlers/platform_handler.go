package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kwadjo-mensah/shopledger-backend/internal/dto"
	"github.com/kwadjo-mensah/shopledger-backend/internal/services"
)

// PlatformHandler serves the operator surface. Routes behind it require
// the platform_admin role.
type PlatformHandler struct {
	platformService *services.PlatformService
}

func NewPlatformHandler(platformService *services.PlatformService) *PlatformHandler {
	return &PlatformHandler{platformService: platformService}
}

func (h *PlatformHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.platformService.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch stats",
		})
	}
	return c.JSON(stats)
}

func (h *PlatformHandler) ListBusinesses(c *fiber.Ctx) error {
	businesses, err := h.platformService.ListBusinesses()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch businesses",
		})
	}
	return c.JSON(fiber.Map{"data": businesses})
}

func (h *PlatformHandler) Revenue(c *fiber.Ctx) error {
	revenue, err := h.platformService.Revenue()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch revenue",
		})
	}
	return c.JSON(revenue)
}
