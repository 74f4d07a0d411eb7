package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripewebhook "github.com/stripe/stripe-go/v82/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func newWebhookApp(secret string) *fiber.App {
	app := fiber.New()
	h := NewWebhookHandler(nil, secret)
	app.Post("/api/webhooks/stripe", h.HandleStripe)
	return app
}

func signedWebhookRequest(t *testing.T, secret, payload string) *http.Request {
	t.Helper()

	signed := stripewebhook.GenerateTestSignedPayload(&stripewebhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    secret,
		Timestamp: time.Now(),
		Scheme:    "v1",
	})

	req := httptest.NewRequest(fiber.MethodPost, "/api/webhooks/stripe", strings.NewReader(string(signed.Payload)))
	req.Header.Set("Stripe-Signature", signed.Header)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleStripeWithoutSecretConfigured(t *testing.T) {
	app := newWebhookApp("")

	req := httptest.NewRequest(fiber.MethodPost, "/api/webhooks/stripe", strings.NewReader("{}"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandleStripeMissingSignature(t *testing.T) {
	app := newWebhookApp(testWebhookSecret)

	req := httptest.NewRequest(fiber.MethodPost, "/api/webhooks/stripe", strings.NewReader(`{"id":"evt_1"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleStripeInvalidSignature(t *testing.T) {
	app := newWebhookApp(testWebhookSecret)

	// Signed with the wrong secret; verification must reject before any
	// processing happens.
	req := signedWebhookRequest(t, "whsec_wrong_secret",
		`{"id":"evt_bad_sig","object":"event","type":"invoice.payment_succeeded","data":{"object":{}}}`)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleStripeStaleTimestamp(t *testing.T) {
	app := newWebhookApp(testWebhookSecret)

	signed := stripewebhook.GenerateTestSignedPayload(&stripewebhook.UnsignedPayload{
		Payload:   []byte(`{"id":"evt_stale","object":"event","type":"invoice.payment_succeeded","data":{"object":{}}}`),
		Secret:    testWebhookSecret,
		Timestamp: time.Now().Add(-time.Hour),
		Scheme:    "v1",
	})
	req := httptest.NewRequest(fiber.MethodPost, "/api/webhooks/stripe", strings.NewReader(string(signed.Payload)))
	req.Header.Set("Stripe-Signature", signed.Header)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
