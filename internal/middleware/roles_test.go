package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/kwadjo-mensah/shopledger-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleAllowed(t *testing.T) {
	allowed := []models.Role{models.RoleOwner, models.RoleManager}

	assert.True(t, RoleAllowed(models.RoleOwner, allowed))
	assert.True(t, RoleAllowed(models.RoleManager, allowed))
	assert.False(t, RoleAllowed(models.RoleCashier, allowed))
	assert.False(t, RoleAllowed(models.RolePlatformAdmin, allowed))
	assert.False(t, RoleAllowed("", allowed))
}

// fakeIdentity plants verified-looking claims the way the JWT middleware
// does, so role guards can be exercised without signing real tokens.
func fakeIdentity(claims jwt.MapClaims) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user", &jwt.Token{Claims: claims})
		return c.Next()
	}
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		allowed    []models.Role
		wantStatus int
	}{
		{"owner on owner-only", "owner", []models.Role{models.RoleOwner}, fiber.StatusOK},
		{"cashier on owner-only", "cashier", []models.Role{models.RoleOwner}, fiber.StatusForbidden},
		{"manager on owner-or-manager", "manager", []models.Role{models.RoleOwner, models.RoleManager}, fiber.StatusOK},
		{"platform admin on tenant route", "platform_admin", []models.Role{models.RoleOwner, models.RoleManager, models.RoleCashier}, fiber.StatusForbidden},
		{"unknown role", "superuser", []models.Role{models.RoleOwner}, fiber.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/guarded",
				fakeIdentity(jwt.MapClaims{"role": tt.role}),
				RequireRoles(tt.allowed...),
				func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/guarded", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestRequireRolesWithoutIdentity(t *testing.T) {
	app := fiber.New()
	app.Get("/guarded",
		RequireRoles(models.RoleOwner),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestPlatformAdminRequired(t *testing.T) {
	app := fiber.New()
	app.Get("/ops",
		fakeIdentity(jwt.MapClaims{"role": "owner"}),
		PlatformAdminRequired(),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/ops-admin",
		fakeIdentity(jwt.MapClaims{"role": "platform_admin"}),
		PlatformAdminRequired(),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ops", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/ops-admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
