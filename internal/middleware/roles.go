package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kwadjo-mensah/shopledger-backend/internal/dto"
	"github.com/kwadjo-mensah/shopledger-backend/internal/models"
	"github.com/kwadjo-mensah/shopledger-backend/internal/tenant"
)

// RoleAllowed reports whether role is in the allowed set.
func RoleAllowed(role models.Role, allowed []models.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// RequireRoles rejects with 403 unless the verified caller's role is in
// the allowed set. Runs after Protected.
func RequireRoles(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := tenant.GetRole(c)
		if !role.Valid() || !RoleAllowed(role, allowed) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Access denied",
			})
		}
		return c.Next()
	}
}

// PlatformAdminRequired guards the operator-only surface. It is kept
// separate from tenant role checks: platform admins carry no business_id
// and never pass through the subscription gate.
func PlatformAdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tenant.GetRole(c) != models.RolePlatformAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Access denied",
			})
		}
		return c.Next()
	}
}
