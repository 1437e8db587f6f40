package payment

import (
	"encoding/json"
	"testing"
	"time"

	"go-gin-event-booking/config"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"
)

const testWebhookSecret = "whsec_test"

func newTestGateway() *StripeGatewayImpl {
	return NewStripeGateway(config.PaymentConfig{
		SecretKey:     "sk_test_123",
		WebhookSecret: testWebhookSecret,
		Currency:      "usd",
		SuccessURL:    "http://localhost/success",
		CancelURL:     "http://localhost/cancel",
	}).(*StripeGatewayImpl)
}

func signedEvent(t *testing.T, event map[string]any) ([]byte, string) {
	t.Helper()
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})
	return signed.Payload, signed.Header
}

func TestParseWebhook(t *testing.T) {
	bookingID := uuid.New()

	t.Run("Checkout completed", func(t *testing.T) {
		g := newTestGateway()
		payload, header := signedEvent(t, map[string]any{
			"id":     "evt_1",
			"object": "event",
			"type":   "checkout.session.completed",
			"data": map[string]any{
				"object": map[string]any{
					"id":             "cs_test_1",
					"object":         "checkout.session",
					"payment_status": "paid",
					"payment_intent": "pi_123",
					"metadata":       map[string]string{"booking_id": bookingID.String()},
				},
			},
		})

		ev, err := g.ParseWebhook(payload, header)

		require.NoError(t, err)
		assert.Equal(t, "evt_1", ev.ID)
		assert.Equal(t, EventCheckoutCompleted, ev.Type)
		assert.Equal(t, bookingID, ev.BookingID)
		assert.Equal(t, "cs_test_1", ev.SessionID)
		assert.Equal(t, "pi_123", ev.PaymentIntentID)
	})

	t.Run("Booking id from client reference", func(t *testing.T) {
		g := newTestGateway()
		payload, header := signedEvent(t, map[string]any{
			"id":     "evt_2",
			"object": "event",
			"type":   "checkout.session.completed",
			"data": map[string]any{
				"object": map[string]any{
					"id":                  "cs_test_2",
					"object":              "checkout.session",
					"payment_status":      "paid",
					"client_reference_id": bookingID.String(),
				},
			},
		})

		ev, err := g.ParseWebhook(payload, header)

		require.NoError(t, err)
		assert.Equal(t, bookingID, ev.BookingID)
	})

	t.Run("Expired session cancels", func(t *testing.T) {
		g := newTestGateway()
		payload, header := signedEvent(t, map[string]any{
			"id":     "evt_3",
			"object": "event",
			"type":   "checkout.session.expired",
			"data": map[string]any{
				"object": map[string]any{
					"id":             "cs_test_3",
					"object":         "checkout.session",
					"payment_status": "unpaid",
					"metadata":       map[string]string{"booking_id": bookingID.String()},
				},
			},
		})

		ev, err := g.ParseWebhook(payload, header)

		require.NoError(t, err)
		assert.Equal(t, EventPaymentFailed, ev.Type)
		assert.Equal(t, bookingID, ev.BookingID)
		assert.Equal(t, "cs_test_3", ev.SessionID)
	})

	t.Run("Async payment failure cancels", func(t *testing.T) {
		g := newTestGateway()
		payload, header := signedEvent(t, map[string]any{
			"id":     "evt_7",
			"object": "event",
			"type":   "checkout.session.async_payment_failed",
			"data": map[string]any{
				"object": map[string]any{
					"id":                  "cs_test_7",
					"object":              "checkout.session",
					"client_reference_id": bookingID.String(),
				},
			},
		})

		ev, err := g.ParseWebhook(payload, header)

		require.NoError(t, err)
		assert.Equal(t, EventPaymentFailed, ev.Type)
		assert.Equal(t, bookingID, ev.BookingID)
	})

	// a declined card inside an open checkout page can still be retried by the customer
	t.Run("Failed payment intent is ignored", func(t *testing.T) {
		g := newTestGateway()
		payload, header := signedEvent(t, map[string]any{
			"id":     "evt_8",
			"object": "event",
			"type":   "payment_intent.payment_failed",
			"data": map[string]any{
				"object": map[string]any{
					"id":       "pi_456",
					"object":   "payment_intent",
					"metadata": map[string]string{"booking_id": bookingID.String()},
				},
			},
		})

		ev, err := g.ParseWebhook(payload, header)

		require.NoError(t, err)
		assert.Equal(t, EventIgnored, ev.Type)
		assert.Equal(t, uuid.Nil, ev.BookingID)
		assert.Equal(t, "payment_intent.payment_failed", ev.RawType)
	})

	t.Run("Unhandled type is ignored", func(t *testing.T) {
		g := newTestGateway()
		payload, header := signedEvent(t, map[string]any{
			"id":     "evt_4",
			"object": "event",
			"type":   "customer.created",
			"data":   map[string]any{"object": map[string]any{"id": "cus_1", "object": "customer"}},
		})

		ev, err := g.ParseWebhook(payload, header)

		require.NoError(t, err)
		assert.Equal(t, EventIgnored, ev.Type)
		assert.Equal(t, "customer.created", ev.RawType)
	})

	t.Run("Bad signature", func(t *testing.T) {
		g := newTestGateway()
		payload, _ := signedEvent(t, map[string]any{"id": "evt_5", "object": "event", "type": "checkout.session.completed"})

		ev, err := g.ParseWebhook(payload, "t=123,v1=deadbeef")

		assert.Error(t, err)
		assert.Nil(t, ev)
	})

	t.Run("Tampered payload", func(t *testing.T) {
		g := newTestGateway()
		_, header := signedEvent(t, map[string]any{"id": "evt_6", "object": "event", "type": "checkout.session.completed"})

		_, err := g.ParseWebhook([]byte(`{"id":"evt_other"}`), header)

		assert.Error(t, err)
	})
}

func TestCheckoutParams(t *testing.T) {
	g := newTestGateway()
	bookingID := uuid.New()

	params := g.checkoutParams(CheckoutRequest{
		BookingID:     bookingID,
		CustomerEmail: "ada@example.com",
		LineItems: []LineItem{
			{Name: "General", UnitPrice: decimal.RequireFromString("50.00"), Quantity: 2},
			{Name: "VIP", UnitPrice: decimal.RequireFromString("99.995"), Quantity: 1},
		},
	})

	require.Len(t, params.LineItems, 2)
	assert.Equal(t, int64(5000), *params.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, int64(2), *params.LineItems[0].Quantity)
	assert.Equal(t, "General", *params.LineItems[0].PriceData.ProductData.Name)
	assert.Equal(t, int64(10000), *params.LineItems[1].PriceData.UnitAmount)
	assert.Equal(t, "usd", *params.LineItems[1].PriceData.Currency)
	assert.Equal(t, "ada@example.com", *params.CustomerEmail)
	assert.Equal(t, bookingID.String(), *params.ClientReferenceID)
	assert.Equal(t, bookingID.String(), params.Metadata["booking_id"])
	assert.Equal(t, bookingID.String(), params.PaymentIntentData.Metadata["booking_id"])
	assert.Equal(t, "payment", *params.Mode)
	assert.Nil(t, params.ExpiresAt)
}

func TestCheckoutParams_ExpiresAt(t *testing.T) {
	g := newTestGateway()
	expiresAt := time.Date(2026, 7, 4, 12, 30, 0, 0, time.UTC)

	params := g.checkoutParams(CheckoutRequest{
		BookingID: uuid.New(),
		LineItems: []LineItem{{Name: "General", UnitPrice: decimal.NewFromInt(10), Quantity: 1}},
		ExpiresAt: expiresAt,
	})

	require.NotNil(t, params.ExpiresAt)
	assert.Equal(t, expiresAt.Unix(), *params.ExpiresAt)
}

func TestClampSessionTTL(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
		want time.Duration
	}{
		{"zero", 0, MinSessionTTL},
		{"below minimum", 10 * time.Minute, MinSessionTTL},
		{"in range", 2 * time.Hour, 2 * time.Hour},
		{"above maximum", 48 * time.Hour, MaxSessionTTL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampSessionTTL(tt.ttl))
		})
	}
}
