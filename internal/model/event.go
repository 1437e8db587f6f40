package model

import (
	"time"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
)

func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo only allows draft -> published -> cancelled.
func (s EventStatus) CanTransitionTo(target EventStatus) bool {
	switch s {
	case EventStatusDraft:
		return target == EventStatusPublished
	case EventStatusPublished:
		return target == EventStatusCancelled
	}
	return false
}

type Event struct {
	ID              uuid.UUID   `json:"id"`
	OrganizerID     uuid.UUID   `json:"organizer_id"`
	CategoryID      *uuid.UUID  `json:"category_id,omitempty"`
	Title           string      `json:"title"`
	Slug            string      `json:"slug"`
	Description     *string     `json:"description,omitempty"`
	StartDate       string      `json:"start_date"`
	StartTime       *string     `json:"start_time,omitempty"`
	EndDate         *string     `json:"end_date,omitempty"`
	EndTime         *string     `json:"end_time,omitempty"`
	LocationName    *string     `json:"location_name,omitempty"`
	LocationAddress *string     `json:"location_address,omitempty"`
	Status          EventStatus `json:"status"`
	Featured        bool        `json:"featured"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	// Location is the raw store representation (WKT string or lat/lng object).
	Location            any          `json:"-"`
	LocationCoordinates *Coordinates `json:"location_coordinates"`

	Category    *Category    `json:"category,omitempty"`
	Organizer   *Organizer   `json:"organizer,omitempty"`
	Images      []EventImage `json:"images,omitempty"`
	TicketTypes []TicketType `json:"ticket_types,omitempty"`
}

func (e *Event) IsPublished() bool {
	return e.Status == EventStatusPublished
}

type EventImage struct {
	ID        uuid.UUID `json:"id"`
	EventID   uuid.UUID `json:"event_id"`
	ImageURL  string    `json:"image_url"`
	AltText   *string   `json:"alt_text,omitempty"`
	IsPrimary bool      `json:"is_primary"`
	SortOrder int       `json:"sort_order"`
}

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
}

type CreateEventParams struct {
	OrganizerID     uuid.UUID
	CategoryID      *uuid.UUID
	Title           string
	Slug            string
	Description     *string
	StartDate       string
	StartTime       *string
	EndDate         *string
	EndTime         *string
	LocationName    *string
	LocationAddress *string
	Latitude        *float64
	Longitude       *float64
	Featured        bool
}

type UpdateEventParams struct {
	CategoryID      *uuid.UUID
	Title           *string
	Description     *string
	StartDate       *string
	StartTime       *string
	EndDate         *string
	EndTime         *string
	LocationName    *string
	LocationAddress *string
	Latitude        *float64
	Longitude       *float64
	Featured        *bool
}

func (p UpdateEventParams) IsEmpty() bool {
	return p.CategoryID == nil && p.Title == nil && p.Description == nil &&
		p.StartDate == nil && p.StartTime == nil && p.EndDate == nil && p.EndTime == nil &&
		p.LocationName == nil && p.LocationAddress == nil &&
		p.Latitude == nil && p.Longitude == nil && p.Featured == nil
}

type EventListFilter struct {
	CategorySlug string
	Search       string
	Featured     *bool
	Limit        int
	Offset       int
}

// EventListQuery is the public catalogue query string.
type EventListQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Featured *bool  `form:"featured"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	Limit    int    `form:"limit,default=20" binding:"min=1,max=100"`
}

// CreateEventRequest is the organizer-facing payload for a new event.
type CreateEventRequest struct {
	CategoryID      *uuid.UUID `json:"category_id"`
	Title           string     `json:"title" binding:"required,max=200"`
	Description     *string    `json:"description"`
	StartDate       string     `json:"start_date" binding:"required,datetime=2006-01-02"`
	StartTime       *string    `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndDate         *string    `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	EndTime         *string    `json:"end_time" binding:"omitempty,datetime=15:04"`
	LocationName    *string    `json:"location_name"`
	LocationAddress *string    `json:"location_address"`
	Latitude        *float64   `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude       *float64   `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Featured        bool       `json:"featured"`
}

type UpdateEventRequest struct {
	CategoryID      *uuid.UUID `json:"category_id"`
	Title           *string    `json:"title" binding:"omitempty,max=200"`
	Description     *string    `json:"description"`
	StartDate       *string    `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	StartTime       *string    `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndDate         *string    `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	EndTime         *string    `json:"end_time" binding:"omitempty,datetime=15:04"`
	LocationName    *string    `json:"location_name"`
	LocationAddress *string    `json:"location_address"`
	Latitude        *float64   `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude       *float64   `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Featured        *bool      `json:"featured"`
}
