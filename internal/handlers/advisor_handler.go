package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/kwadjo-mensah/shopledger-backend/internal/dto"
	"github.com/kwadjo-mensah/shopledger-backend/internal/services"
	"github.com/kwadjo-mensah/shopledger-backend/internal/tenant"
)

type AdvisorHandler struct {
	advisorService *services.AdvisorService
}

func NewAdvisorHandler(advisorService *services.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{advisorService: advisorService}
}

func (h *AdvisorHandler) Ask(c *fiber.Ctx) error {
	businessID, err := tenant.GetBusinessID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	question := c.Query("question")
	if question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "question query parameter is required",
		})
	}

	answer, err := h.advisorService.Ask(c.Context(), businessID, question)
	if err != nil {
		if errors.Is(err, services.ErrAdvisorUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: true, Message: "AI advisor is not configured",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to get advice",
		})
	}

	return c.JSON(dto.AdvisorResponse{Answer: answer})
}
