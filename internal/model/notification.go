package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmailJob asks the worker to send the confirmation mail of a booking.
type EmailJob struct {
	BookingID   uuid.UUID `json:"booking_id"`
	RequestedAt time.Time `json:"requested_at"`
}

type ConfirmationTicket struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type ConfirmationAttendee struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SendConfirmationRequest struct {
	BookingID   uuid.UUID              `json:"booking_id" binding:"required"`
	UserEmail   string                 `json:"user_email" binding:"required,email"`
	EventName   string                 `json:"event_name" binding:"required"`
	EventDate   string                 `json:"event_date" binding:"required"`
	TotalAmount decimal.Decimal        `json:"total_amount"`
	Tickets     []ConfirmationTicket   `json:"tickets,omitempty"`
	Attendees   []ConfirmationAttendee `json:"attendees,omitempty"`
}
