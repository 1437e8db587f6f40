package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

type Organizer struct {
	ID                 uuid.UUID          `json:"id"`
	UserID             uuid.UUID          `json:"user_id"`
	BusinessName       string             `json:"business_name"`
	ContactEmail       string             `json:"contact_email"`
	Description        *string            `json:"description,omitempty"`
	Website            *string            `json:"website,omitempty"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type RegisterOrganizerRequest struct {
	BusinessName string  `json:"business_name" binding:"required,max=200"`
	ContactEmail string  `json:"contact_email" binding:"required,email"`
	Description  *string `json:"description"`
	Website      *string `json:"website" binding:"omitempty,url"`
}

type UpdateOrganizerParams struct {
	BusinessName *string `json:"business_name" binding:"omitempty,max=200"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	Description  *string `json:"description"`
	Website      *string `json:"website" binding:"omitempty,url"`
}

func (p UpdateOrganizerParams) IsEmpty() bool {
	return p.BusinessName == nil && p.ContactEmail == nil && p.Description == nil && p.Website == nil
}

// DashboardStats aggregates an organizer's events and sales.
type DashboardStats struct {
	TotalEvents       int             `json:"total_events"`
	PublishedEvents   int             `json:"published_events"`
	DraftEvents       int             `json:"draft_events"`
	TotalBookings     int             `json:"total_bookings"`
	ConfirmedBookings int             `json:"confirmed_bookings"`
	PendingBookings   int             `json:"pending_bookings"`
	TicketsSold       int             `json:"tickets_sold"`
	Revenue           decimal.Decimal `json:"revenue"`
}
