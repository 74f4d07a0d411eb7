package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withClaims plants verified-looking claims the way the JWT middleware
// does, so handlers can be exercised without signing real tokens.
func withClaims(claims jwt.MapClaims) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user", &jwt.Token{Claims: claims})
		return c.Next()
	}
}

// The handler must reject bad payment bodies before the service is
// touched; the nil service here panics if any case slips through.
func TestRecordPaymentRejectsInvalidBodies(t *testing.T) {
	app := fiber.New()
	h := NewDebtHandler(nil)
	app.Post("/api/debts/:id/payments",
		withClaims(jwt.MapClaims{"role": "owner", "business_id": float64(1)}),
		h.RecordPayment)

	tests := []struct {
		name string
		path string
		body string
	}{
		{"missing amount", "/api/debts/1/payments", `{}`},
		{"malformed json", "/api/debts/1/payments", `{"amount":`},
		{"non-numeric debt id", "/api/debts/abc/payments", `{"amount":"10.00"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestRecordPaymentWithoutIdentity(t *testing.T) {
	app := fiber.New()
	h := NewDebtHandler(nil)
	app.Post("/api/debts/:id/payments", h.RecordPayment)

	req := httptest.NewRequest(fiber.MethodPost, "/api/debts/1/payments", strings.NewReader(`{"amount":"10.00"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
