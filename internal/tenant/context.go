package tenant

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kwadjo-mensah/shopledger-backend/internal/models"
)

var ErrNoIdentity = errors.New("no verified identity in context")

// Identity is the verified caller extracted from a bearer token.
type Identity struct {
	UserID     uuid.UUID
	Role       models.Role
	BusinessID uint
}

func claims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, ErrNoIdentity
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNoIdentity
	}
	return mc, nil
}

// GetUserID extracts the user UUID from JWT claims in context.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	mc, err := claims(c)
	if err != nil {
		return uuid.Nil, err
	}
	sub, ok := mc["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}
	return uuid.Parse(sub)
}

// GetRole extracts the caller role from JWT claims in context.
func GetRole(c *fiber.Ctx) models.Role {
	mc, err := claims(c)
	if err != nil {
		return ""
	}
	role, _ := mc["role"].(string)
	return models.Role(role)
}

// GetBusinessID extracts the tenant id from JWT claims in context.
// Platform admin tokens carry no business_id and fail here.
func GetBusinessID(c *fiber.Ctx) (uint, error) {
	mc, err := claims(c)
	if err != nil {
		return 0, err
	}
	// JSON numbers decode as float64 in MapClaims.
	id, ok := mc["business_id"].(float64)
	if !ok || id <= 0 {
		return 0, errors.New("missing business_id claim")
	}
	return uint(id), nil
}
