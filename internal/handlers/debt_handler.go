package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/kwadjo-mensah/shopledger-backend/internal/dto"
	"github.com/kwadjo-mensah/shopledger-backend/internal/services"
	"github.com/kwadjo-mensah/shopledger-backend/internal/tenant"
)

type DebtHandler struct {
	debtService *services.DebtService
}

func NewDebtHandler(debtService *services.DebtService) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

func (h *DebtHandler) List(c *fiber.Ctx) error {
	businessID, err := tenant.GetBusinessID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	debts, err := h.debtService.List(businessID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch debts",
		})
	}
	return c.JSON(fiber.Map{"data": debts})
}

func (h *DebtHandler) RecordPayment(c *fiber.Ctx) error {
	businessID, err := tenant.GetBusinessID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	debtID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid debt ID",
		})
	}

	var req dto.DebtPaymentRequest
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

	debt, err := h.debtService.RecordPayment(businessID, uint(debtID), req.Amount)
	if err != nil {
		if errors.Is(err, services.ErrDebtNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Debt not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(debt)
}
