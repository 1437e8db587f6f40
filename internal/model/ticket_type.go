package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TicketType struct {
	ID                uuid.UUID       `json:"id"`
	EventID           uuid.UUID       `json:"event_id"`
	Name              string          `json:"name"`
	Description       *string         `json:"description,omitempty"`
	Price             decimal.Decimal `json:"price"`
	QuantityAvailable int             `json:"quantity_available"`
	QuantitySold      int             `json:"quantity_sold"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (t *TicketType) Remaining() int {
	return t.QuantityAvailable - t.QuantitySold
}

func (t *TicketType) IsAvailable(quantity int) bool {
	return quantity > 0 && t.Remaining() >= quantity
}

type CreateTicketTypeRequest struct {
	Name              string          `json:"name" binding:"required,max=100"`
	Description       *string         `json:"description"`
	Price             decimal.Decimal `json:"price"`
	QuantityAvailable int             `json:"quantity_available" binding:"min=0"`
}
