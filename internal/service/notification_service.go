package service

import (
	"context"
	"fmt"
	"strings"

	"go-gin-event-booking/internal/email"
	"go-gin-event-booking/internal/metrics"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/repository"
	apperrors "go-gin-event-booking/pkg/app_errors"
	"go-gin-event-booking/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationService interface {
	// SendConfirmation mails the caller-supplied summary of one of the caller's confirmed bookings.
	// The mail always goes to the booking's customer email and carries the stored total.
	SendConfirmation(ctx context.Context, userID uuid.UUID, req model.SendConfirmationRequest) error
	// SendBookingConfirmation builds the mail from stored data. Used by the email worker.
	SendBookingConfirmation(ctx context.Context, bookingID uuid.UUID) error
}

type NotificationServiceImpl struct {
	bookingRepo    repository.BookingRepository
	eventRepo      repository.EventRepository
	ticketTypeRepo repository.TicketTypeRepository
	sender         email.Sender
}

func NewNotificationService(
	bookingRepo repository.BookingRepository,
	eventRepo repository.EventRepository,
	ticketTypeRepo repository.TicketTypeRepository,
	sender email.Sender,
) NotificationService {
	return &NotificationServiceImpl{
		bookingRepo:    bookingRepo,
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		sender:         sender,
	}
}

func (s *NotificationServiceImpl) SendConfirmation(ctx context.Context, userID uuid.UUID, req model.SendConfirmationRequest) error {
	if userID == uuid.Nil {
		return apperrors.ErrUnauthorized
	}

	booking, err := s.bookingRepo.FindByID(ctx, req.BookingID)
	if err != nil {
		return err
	}
	if !booking.IsOwnedBy(userID) {
		return apperrors.ErrBookingNotFound
	}
	if booking.Status != model.BookingStatusConfirmed {
		return apperrors.ErrInvalidBookingStatus
	}
	if !strings.EqualFold(strings.TrimSpace(req.UserEmail), booking.CustomerEmail) {
		logger.WithComponent("service").Info("confirmation resend goes to the booking email, not the requested one",
			zap.String("booking_id", booking.ID.String()))
	}

	return s.send(ctx, email.Confirmation{
		BookingID:    booking.ID,
		To:           booking.CustomerEmail,
		CustomerName: booking.CustomerName,
		EventName:    req.EventName,
		EventDate:    req.EventDate,
		TotalAmount:  booking.TotalPrice,
		Tickets:      req.Tickets,
		Attendees:    req.Attendees,
	})
}

func (s *NotificationServiceImpl) SendBookingConfirmation(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.Status != model.BookingStatusConfirmed {
		logger.WithComponent("service").Warn("skip confirmation email for unconfirmed booking",
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(booking.Status)))
		return nil
	}

	event, err := s.eventRepo.FindByID(ctx, booking.EventID)
	if err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(booking.Items))
	for _, item := range booking.Items {
		ids = append(ids, item.TicketTypeID)
	}
	ticketTypes, err := s.ticketTypeRepo.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load ticket types: %w", err)
	}
	names := make(map[uuid.UUID]string, len(ticketTypes))
	for _, tt := range ticketTypes {
		names[tt.ID] = tt.Name
	}

	tickets := make([]model.ConfirmationTicket, 0, len(booking.Items))
	for _, item := range booking.Items {
		tickets = append(tickets, model.ConfirmationTicket{
			Name:      names[item.TicketTypeID],
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	attendees := make([]model.ConfirmationAttendee, 0, len(booking.Attendees))
	for _, a := range booking.Attendees {
		attendees = append(attendees, model.ConfirmationAttendee{Name: a.Name, Email: a.Email})
	}

	eventDate := event.StartDate
	if event.StartTime != nil && *event.StartTime != "" {
		eventDate += " " + *event.StartTime
	}

	return s.send(ctx, email.Confirmation{
		BookingID:    booking.ID,
		To:           booking.CustomerEmail,
		CustomerName: booking.CustomerName,
		EventName:    event.Title,
		EventDate:    eventDate,
		TotalAmount:  booking.TotalPrice,
		Tickets:      tickets,
		Attendees:    attendees,
	})
}

func (s *NotificationServiceImpl) send(ctx context.Context, c email.Confirmation) error {
	msg, err := email.RenderConfirmation(c)
	if err != nil {
		metrics.EmailJobs.WithLabelValues("render_failed").Inc()
		return fmt.Errorf("render confirmation: %w", err)
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		metrics.EmailJobs.WithLabelValues("failed").Inc()
		return apperrors.NewUpstreamError("email", fmt.Errorf("failed to send confirmation email: %w", err))
	}
	metrics.EmailJobs.WithLabelValues("sent").Inc()
	logger.WithComponent("service").Info("confirmation email sent",
		zap.String("booking_id", c.BookingID.String()))
	return nil
}
