package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-gin-event-booking/internal/database"
	"go-gin-event-booking/internal/metrics"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/repository"
	apperrors "go-gin-event-booking/pkg/app_errors"
	"go-gin-event-booking/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var validate = validator.New()

type BookingService interface {
	// Create prices the booking from stored ticket types and writes it in pending status.
	Create(ctx context.Context, userID uuid.UUID, req model.CreateBookingRequest) (*model.Booking, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*model.Booking, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*model.Booking, error)
	Cancel(ctx context.Context, userID, id uuid.UUID) (*model.Booking, error)
	// ExpireStale cancels pending bookings older than olderThan and returns how many were cancelled.
	ExpireStale(ctx context.Context, olderThan time.Duration) (int, error)
}

type BookingServiceImpl struct {
	txManager      database.TxManager
	bookingRepo    repository.BookingRepository
	eventRepo      repository.EventRepository
	ticketTypeRepo repository.TicketTypeRepository
	clock          clockwork.Clock
}

func NewBookingService(
	txManager database.TxManager,
	bookingRepo repository.BookingRepository,
	eventRepo repository.EventRepository,
	ticketTypeRepo repository.TicketTypeRepository,
	clock clockwork.Clock,
) BookingService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &BookingServiceImpl{
		txManager:      txManager,
		bookingRepo:    bookingRepo,
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		clock:          clock,
	}
}

func validateBookingRequest(req model.CreateBookingRequest) error {
	verr := &apperrors.ValidationError{}

	if req.EventID == uuid.Nil {
		verr.Add("event_id", "event_id is required")
	}

	if len(req.Tickets) == 0 {
		verr.Add("tickets", "at least one ticket is required")
	}
	seen := make(map[uuid.UUID]bool, len(req.Tickets))
	for i, t := range req.Tickets {
		field := fmt.Sprintf("tickets[%d]", i)
		if t.TicketTypeID == uuid.Nil {
			verr.Add(field+".ticket_type_id", "ticket_type_id is required")
		} else if seen[t.TicketTypeID] {
			verr.Add(field+".ticket_type_id", "duplicate ticket type")
		}
		seen[t.TicketTypeID] = true
		if t.Quantity <= 0 {
			verr.Add(field+".quantity", "quantity must be greater than 0")
		}
	}

	if len(req.Attendees) == 0 {
		verr.Add("attendees", "at least one attendee is required")
	}
	for i, a := range req.Attendees {
		field := fmt.Sprintf("attendees[%d]", i)
		if strings.TrimSpace(a.Name) == "" {
			verr.Add(field+".name", "name is required")
		}
		if strings.TrimSpace(a.Email) == "" {
			verr.Add(field+".email", "email is required")
		} else if validate.Var(a.Email, "email") != nil {
			verr.Add(field+".email", "email is invalid")
		}
		if a.TicketTypeID != nil && !seen[*a.TicketTypeID] {
			verr.Add(field+".ticket_type_id", "ticket type is not part of this booking")
		}
	}

	if req.CustomerEmail != "" && validate.Var(req.CustomerEmail, "email") != nil {
		verr.Add("customer_email", "email is invalid")
	}

	return verr.OrNil()
}

// PriceBooking builds the booking lines from server-held unit prices. Client prices are never read.
// Every requested ticket type must be present in types.
func PriceBooking(tickets []model.BookingTicketRequest, types map[uuid.UUID]*model.TicketType) ([]model.BookingItem, decimal.Decimal) {
	items := make([]model.BookingItem, 0, len(tickets))
	total := decimal.Zero
	for _, t := range tickets {
		tt := types[t.TicketTypeID]
		lineTotal := tt.Price.Mul(decimal.NewFromInt(int64(t.Quantity)))
		items = append(items, model.BookingItem{
			TicketTypeID: tt.ID,
			Quantity:     t.Quantity,
			UnitPrice:    tt.Price,
			TotalPrice:   lineTotal,
		})
		total = total.Add(lineTotal)
	}
	return items, total
}

func (s *BookingServiceImpl) Create(ctx context.Context, userID uuid.UUID, req model.CreateBookingRequest) (*model.Booking, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if !event.IsPublished() {
		return nil, apperrors.NewValidationError("event_id", "event is not open for booking")
	}

	ids := make([]uuid.UUID, 0, len(req.Tickets))
	for _, t := range req.Tickets {
		ids = append(ids, t.TicketTypeID)
	}
	ticketTypes, err := s.ticketTypeRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.NewUpstreamError("store", fmt.Errorf("ticket types query failed: %w", err))
	}
	types := make(map[uuid.UUID]*model.TicketType, len(ticketTypes))
	for _, tt := range ticketTypes {
		types[tt.ID] = tt
	}

	verr := &apperrors.ValidationError{}
	for i, t := range req.Tickets {
		tt, ok := types[t.TicketTypeID]
		if !ok || tt.EventID != event.ID {
			verr.Add(fmt.Sprintf("tickets[%d].ticket_type_id", i), "unknown ticket type for this event")
		}
	}
	if verr.HasErrors() {
		return nil, verr
	}
	for _, t := range req.Tickets {
		if !types[t.TicketTypeID].IsAvailable(t.Quantity) {
			return nil, apperrors.ErrInsufficientStock
		}
	}

	items, total := PriceBooking(req.Tickets, types)

	attendees := make([]model.Attendee, 0, len(req.Attendees))
	for _, a := range req.Attendees {
		attendees = append(attendees, model.Attendee{
			TicketTypeID: a.TicketTypeID,
			Name:         strings.TrimSpace(a.Name),
			Email:        strings.TrimSpace(a.Email),
		})
	}

	customerName := strings.TrimSpace(req.CustomerName)
	if customerName == "" {
		customerName = attendees[0].Name
	}
	customerEmail := strings.TrimSpace(req.CustomerEmail)
	if customerEmail == "" {
		customerEmail = attendees[0].Email
	}

	booking := &model.Booking{
		UserID:         userID,
		EventID:        event.ID,
		Status:         model.BookingStatusPending,
		TotalPrice:     total,
		CustomerName:   customerName,
		CustomerEmail:  customerEmail,
		CustomerPhone:  req.CustomerPhone,
		IdempotencyKey: uuid.NewString(),
		Items:          items,
		Attendees:      attendees,
	}

	var created *model.Booking
	err = s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		created, err = s.bookingRepo.Create(ctx, tx, booking)
		return err
	})
	if err != nil {
		return nil, apperrors.NewUpstreamError("store", fmt.Errorf("booking insert failed: %w", err))
	}

	metrics.BookingsCreated.Inc()
	logger.WithComponent("service").Info("booking created",
		zap.String("booking_id", created.ID.String()),
		zap.String("event_id", created.EventID.String()),
		zap.String("total_price", created.TotalPrice.String()))

	return created, nil
}

func (s *BookingServiceImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*model.Booking, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// someone else's booking looks the same as a missing one
	if !booking.IsOwnedBy(userID) {
		return nil, apperrors.ErrBookingNotFound
	}
	return booking, nil
}

func (s *BookingServiceImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*model.Booking, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	return s.bookingRepo.ListByUserID(ctx, userID)
}

func (s *BookingServiceImpl) Cancel(ctx context.Context, userID, id uuid.UUID) (*model.Booking, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}

	var cancelled *model.Booking
	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if !booking.IsOwnedBy(userID) {
			return apperrors.ErrBookingNotFound
		}
		if booking.Status != model.BookingStatusPending {
			return apperrors.ErrInvalidBookingStatus
		}
		if err := s.bookingRepo.UpdateStatus(ctx, tx, id, model.BookingStatusPending, model.BookingStatusCancelled, nil); err != nil {
			return err
		}
		booking.Status = model.BookingStatusCancelled
		cancelled = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.BookingTransitions.WithLabelValues(string(model.BookingStatusCancelled), "user").Inc()
	return cancelled, nil
}

func (s *BookingServiceImpl) ExpireStale(ctx context.Context, olderThan time.Duration) (int, error) {
	if olderThan <= 0 {
		return 0, errors.New("expiry window must be positive")
	}
	now := s.clock.Now()
	cutoff := now.Add(-olderThan)

	ids, err := s.bookingRepo.ExpirePending(ctx, cutoff, now)
	if err != nil {
		return 0, fmt.Errorf("expire pending bookings: %w", err)
	}
	if len(ids) > 0 {
		metrics.BookingTransitions.WithLabelValues(string(model.BookingStatusCancelled), "expired").Add(float64(len(ids)))
		logger.WithComponent("service").Info("expired stale bookings",
			zap.Int("count", len(ids)),
			zap.Time("cutoff", cutoff))
	}
	return len(ids), nil
}
