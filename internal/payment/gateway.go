package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WebhookEventType string

const (
	EventCheckoutCompleted WebhookEventType = "checkout_completed"
	EventPaymentFailed     WebhookEventType = "payment_failed"
	EventIgnored           WebhookEventType = "ignored"
)

// Checkout sessions can only be opened for a window within these bounds. The gateway measures
// its 30 minute floor from its own clock, so the minimum carries one minute of slack.
const (
	MinSessionTTL = 31 * time.Minute
	MaxSessionTTL = 24 * time.Hour
)

// ClampSessionTTL forces ttl into [MinSessionTTL, MaxSessionTTL].
func ClampSessionTTL(ttl time.Duration) time.Duration {
	if ttl < MinSessionTTL {
		return MinSessionTTL
	}
	if ttl > MaxSessionTTL {
		return MaxSessionTTL
	}
	return ttl
}

type LineItem struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

type CheckoutRequest struct {
	BookingID      uuid.UUID
	CustomerEmail  string
	LineItems      []LineItem
	IdempotencyKey string
	// ExpiresAt closes the hosted page. Zero leaves the gateway default.
	ExpiresAt time.Time
}

type CheckoutSession struct {
	ID  string
	URL string
}

// WebhookEvent is a verified gateway notification reduced to what booking confirmation needs.
type WebhookEvent struct {
	ID              string
	Type            WebhookEventType
	RawType         string
	BookingID       uuid.UUID
	SessionID       string
	PaymentIntentID string
}

type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	// ParseWebhook verifies the signature header and decodes the event. Any failure means the
	// payload must not be acted on.
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}
