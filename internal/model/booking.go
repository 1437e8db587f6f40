package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks the booking state machine. confirmed and cancelled are terminal.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	transitions := map[BookingStatus][]BookingStatus{
		BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
		BookingStatusConfirmed: {},
		BookingStatusCancelled: {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

type Booking struct {
	ID                uuid.UUID       `json:"id"`
	UserID            uuid.UUID       `json:"user_id"`
	EventID           uuid.UUID       `json:"event_id"`
	Status            BookingStatus   `json:"status"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	CustomerName      string          `json:"customer_name"`
	CustomerEmail     string          `json:"customer_email"`
	CustomerPhone     *string         `json:"customer_phone,omitempty"`
	IdempotencyKey    string          `json:"-"`
	CheckoutSessionID *string         `json:"checkout_session_id,omitempty"`
	CheckoutExpiresAt *time.Time      `json:"checkout_expires_at,omitempty"`
	PaymentIntentID   *string         `json:"payment_intent_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	Items     []BookingItem `json:"items,omitempty"`
	Attendees []Attendee    `json:"attendees,omitempty"`
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.UserID == userID
}

func (b *Booking) TicketCount() int {
	n := 0
	for _, item := range b.Items {
		n += item.Quantity
	}
	return n
}

type BookingItem struct {
	ID           uuid.UUID       `json:"id"`
	BookingID    uuid.UUID       `json:"booking_id"`
	TicketTypeID uuid.UUID       `json:"ticket_type_id"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

type Attendee struct {
	ID           uuid.UUID  `json:"id"`
	BookingID    uuid.UUID  `json:"booking_id"`
	TicketTypeID *uuid.UUID `json:"ticket_type_id,omitempty"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
}

type BookingTicketRequest struct {
	TicketTypeID uuid.UUID `json:"ticket_type_id"`
	Quantity     int       `json:"quantity"`
	// Price is accepted for compatibility with older clients and ignored; unit prices come from the ticket type.
	Price *decimal.Decimal `json:"price,omitempty"`
}

type AttendeeRequest struct {
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	TicketTypeID *uuid.UUID `json:"ticket_type_id,omitempty"`
}

type CreateBookingRequest struct {
	EventID       uuid.UUID              `json:"event_id" binding:"required"`
	Tickets       []BookingTicketRequest `json:"tickets"`
	Attendees     []AttendeeRequest      `json:"attendees"`
	CustomerName  string                 `json:"customer_name"`
	CustomerEmail string                 `json:"customer_email"`
	CustomerPhone *string                `json:"customer_phone"`
}

type CreateCheckoutSessionRequest struct {
	BookingID     uuid.UUID `json:"booking_id" binding:"required"`
	CustomerEmail string    `json:"customer_email" binding:"omitempty,email"`
}

type CheckoutSessionResponse struct {
	CheckoutURL string `json:"checkout_url"`
	SessionID   string `json:"session_id"`
}
