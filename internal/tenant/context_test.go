package tenant

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kwadjo-mensah/shopledger-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes fn inside a request with the given claims planted the way
// the JWT middleware plants them.
func run(t *testing.T, claims jwt.MapClaims, fn func(c *fiber.Ctx)) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if claims != nil {
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		fn(c)
		return c.SendStatus(fiber.StatusOK)
	})
	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
}

func TestGetBusinessID(t *testing.T) {
	// MapClaims decode JSON numbers as float64.
	run(t, jwt.MapClaims{"business_id": float64(7)}, func(c *fiber.Ctx) {
		id, err := GetBusinessID(c)
		require.NoError(t, err)
		assert.Equal(t, uint(7), id)
	})
}

func TestGetBusinessIDMissingClaim(t *testing.T) {
	run(t, jwt.MapClaims{"role": "platform_admin"}, func(c *fiber.Ctx) {
		_, err := GetBusinessID(c)
		assert.Error(t, err)
	})
}

func TestGetBusinessIDWithoutToken(t *testing.T) {
	run(t, nil, func(c *fiber.Ctx) {
		_, err := GetBusinessID(c)
		assert.ErrorIs(t, err, ErrNoIdentity)
	})
}

func TestGetUserID(t *testing.T) {
	id := uuid.New()
	run(t, jwt.MapClaims{"sub": id.String()}, func(c *fiber.Ctx) {
		got, err := GetUserID(c)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})
}

func TestGetRole(t *testing.T) {
	run(t, jwt.MapClaims{"role": "cashier"}, func(c *fiber.Ctx) {
		assert.Equal(t, models.RoleCashier, GetRole(c))
	})
	run(t, nil, func(c *fiber.Ctx) {
		assert.Equal(t, models.Role(""), GetRole(c))
	})
}
