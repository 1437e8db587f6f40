package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-gin-event-booking/internal/cache"
	"go-gin-event-booking/internal/database"
	"go-gin-event-booking/internal/metrics"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/payment"
	"go-gin-event-booking/internal/queue"
	"go-gin-event-booking/internal/repository"
	apperrors "go-gin-event-booking/pkg/app_errors"
	"go-gin-event-booking/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const (
	outcomeConfirmed = "confirmed"
	outcomeCancelled = "cancelled"
	outcomeDuplicate = "duplicate"
	outcomeSkipped   = "skipped"
	outcomeIgnored   = "ignored"
	// the customer paid but the booking could not be confirmed
	outcomeSoldOut        = "sold_out"
	outcomeNotPending     = "not_pending"
	outcomeUnknownBooking = "unknown_booking"
)

// checkoutKeySpace namespaces the per-attempt idempotency keys sent to the gateway.
var checkoutKeySpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("go-gin-event-booking/checkout"))

type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, userID uuid.UUID, req model.CreateCheckoutSessionRequest) (*model.CheckoutSessionResponse, error)
	// HandleWebhook verifies and applies a gateway event. Replays of an applied event are no-ops.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type PaymentServiceImpl struct {
	txManager      database.TxManager
	bookingRepo    repository.BookingRepository
	ticketTypeRepo repository.TicketTypeRepository
	webhookRepo    repository.WebhookEventRepository
	guard          cache.WebhookEventGuard
	gateway        payment.Gateway
	emailQueue     queue.EmailQueue
	clock          clockwork.Clock
	sessionTTL     time.Duration
}

// NewPaymentService wires the booking confirmation flow. guard and emailQueue may be nil.
// sessionTTL is clamped to the range the gateway accepts.
func NewPaymentService(
	txManager database.TxManager,
	bookingRepo repository.BookingRepository,
	ticketTypeRepo repository.TicketTypeRepository,
	webhookRepo repository.WebhookEventRepository,
	guard cache.WebhookEventGuard,
	gateway payment.Gateway,
	emailQueue queue.EmailQueue,
	clock clockwork.Clock,
	sessionTTL time.Duration,
) PaymentService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &PaymentServiceImpl{
		txManager:      txManager,
		bookingRepo:    bookingRepo,
		ticketTypeRepo: ticketTypeRepo,
		webhookRepo:    webhookRepo,
		guard:          guard,
		gateway:        gateway,
		emailQueue:     emailQueue,
		clock:          clock,
		sessionTTL:     payment.ClampSessionTTL(sessionTTL),
	}
}

func (s *PaymentServiceImpl) CreateCheckoutSession(ctx context.Context, userID uuid.UUID, req model.CreateCheckoutSessionRequest) (*model.CheckoutSessionResponse, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}

	booking, err := s.bookingRepo.FindByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if !booking.IsOwnedBy(userID) {
		return nil, apperrors.ErrBookingNotFound
	}
	if booking.Status != model.BookingStatusPending {
		return nil, apperrors.ErrInvalidBookingStatus
	}

	ids := make([]uuid.UUID, 0, len(booking.Items))
	for _, item := range booking.Items {
		ids = append(ids, item.TicketTypeID)
	}
	ticketTypes, err := s.ticketTypeRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.NewUpstreamError("store", fmt.Errorf("ticket types query failed: %w", err))
	}
	names := make(map[uuid.UUID]string, len(ticketTypes))
	for _, tt := range ticketTypes {
		names[tt.ID] = tt.Name
	}

	lineItems := make([]payment.LineItem, 0, len(booking.Items))
	for _, item := range booking.Items {
		name := names[item.TicketTypeID]
		if name == "" {
			name = "Ticket"
		}
		lineItems = append(lineItems, payment.LineItem{
			Name:      name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	email := req.CustomerEmail
	if email == "" {
		email = booking.CustomerEmail
	}

	expiresAt := s.clock.Now().Add(s.sessionTTL).Truncate(time.Second).UTC()

	session, err := s.gateway.CreateCheckoutSession(ctx, payment.CheckoutRequest{
		BookingID:      booking.ID,
		CustomerEmail:  email,
		LineItems:      lineItems,
		IdempotencyKey: checkoutIdempotencyKey(booking.IdempotencyKey, email, expiresAt),
		ExpiresAt:      expiresAt,
	})
	if err != nil {
		return nil, apperrors.NewUpstreamError("payment", err)
	}

	// the webhook carries the booking id in metadata, so a lost session id does not block confirmation
	if err := s.bookingRepo.SetCheckoutSession(ctx, booking.ID, session.ID, expiresAt); err != nil {
		logger.WithComponent("payment").Error("failed to store checkout session id",
			zap.String("booking_id", booking.ID.String()),
			zap.String("session_id", session.ID),
			zap.Error(err))
	}

	return &model.CheckoutSessionResponse{CheckoutURL: session.URL, SessionID: session.ID}, nil
}

// checkoutIdempotencyKey covers every request parameter that may differ between two checkout
// attempts on the same booking, so the gateway never sees one key with two parameter sets.
func checkoutIdempotencyKey(bookingKey, email string, expiresAt time.Time) string {
	name := fmt.Sprintf("%s|%s|%d", bookingKey, email, expiresAt.Unix())
	return uuid.NewSHA1(checkoutKeySpace, []byte(name)).String()
}

func (s *PaymentServiceImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	log := logger.WithComponent("payment")

	ev, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		log.Warn("webhook rejected", zap.Error(err))
		metrics.WebhookEvents.WithLabelValues("unknown", "rejected").Inc()
		return apperrors.ErrInvalidSignature
	}

	log = log.With(zap.String("event_id", ev.ID), zap.String("event_type", ev.RawType))

	if ev.Type == payment.EventIgnored {
		log.Debug("webhook event ignored")
		metrics.WebhookEvents.WithLabelValues(ev.RawType, outcomeIgnored).Inc()
		return nil
	}
	if ev.BookingID == uuid.Nil {
		log.Warn("webhook event without booking reference")
		metrics.WebhookEvents.WithLabelValues(ev.RawType, outcomeIgnored).Inc()
		return nil
	}
	log = log.With(zap.String("booking_id", ev.BookingID.String()))

	if !s.claim(ctx, ev.ID) {
		log.Info("webhook event already handled")
		metrics.WebhookEvents.WithLabelValues(ev.RawType, outcomeDuplicate).Inc()
		return nil
	}

	outcome, err := s.apply(ctx, ev)
	if err != nil {
		s.release(context.WithoutCancel(ctx), ev.ID)
		log.Error("webhook processing failed", zap.Error(err))
		metrics.WebhookEvents.WithLabelValues(ev.RawType, "error").Inc()
		return err
	}
	s.complete(ctx, ev.ID)

	log.Info("webhook processed", zap.String("outcome", outcome))
	metrics.WebhookEvents.WithLabelValues(ev.RawType, outcome).Inc()

	switch outcome {
	case outcomeConfirmed:
		metrics.BookingTransitions.WithLabelValues(string(model.BookingStatusConfirmed), "payment").Inc()
		s.enqueueConfirmation(ctx, ev.BookingID)
	case outcomeCancelled:
		metrics.BookingTransitions.WithLabelValues(string(model.BookingStatusCancelled), "payment").Inc()
	case outcomeSoldOut:
		metrics.BookingTransitions.WithLabelValues(string(model.BookingStatusCancelled), "payment").Inc()
		flagRefund(log, ev, outcome)
	case outcomeNotPending, outcomeUnknownBooking:
		flagRefund(log, ev, outcome)
	}
	return nil
}

// flagRefund reports a captured payment that no booking absorbed. Refunds are issued by hand.
func flagRefund(log *zap.Logger, ev *payment.WebhookEvent, reason string) {
	log.Error("payment captured but booking not confirmed; manual refund required",
		zap.String("reason", reason),
		zap.String("payment_intent_id", ev.PaymentIntentID),
		zap.String("session_id", ev.SessionID))
	metrics.PaymentsRequiringRefund.WithLabelValues(reason).Inc()
}

func (s *PaymentServiceImpl) apply(ctx context.Context, ev *payment.WebhookEvent) (string, error) {
	switch ev.Type {
	case payment.EventCheckoutCompleted:
		outcome, err := s.confirm(ctx, ev)
		if errors.Is(err, apperrors.ErrInsufficientStock) {
			logger.WithComponent("payment").Warn("inventory exhausted after payment, cancelling booking",
				zap.String("booking_id", ev.BookingID.String()))
			outcome, err = s.cancel(ctx, ev)
			if err == nil && outcome == outcomeCancelled {
				outcome = outcomeSoldOut
			}
		}
		return outcome, err
	case payment.EventPaymentFailed:
		return s.cancel(ctx, ev)
	}
	return outcomeIgnored, nil
}

// confirm records the event, increments sold counts and confirms the booking in one transaction.
func (s *PaymentServiceImpl) confirm(ctx context.Context, ev *payment.WebhookEvent) (string, error) {
	outcome := outcomeSkipped
	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		booking, done, err := s.lockPending(ctx, tx, ev, &outcome)
		if err != nil || done {
			return err
		}

		for _, item := range booking.Items {
			if err := s.ticketTypeRepo.IncrementSold(ctx, tx, item.TicketTypeID, item.Quantity); err != nil {
				return err
			}
		}

		if err := s.bookingRepo.UpdateStatus(ctx, tx, booking.ID, model.BookingStatusPending, model.BookingStatusConfirmed, paymentIntent(ev)); err != nil {
			return err
		}
		outcome = outcomeConfirmed
		return nil
	})
	return outcome, err
}

func (s *PaymentServiceImpl) cancel(ctx context.Context, ev *payment.WebhookEvent) (string, error) {
	outcome := outcomeSkipped
	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		booking, done, err := s.lockPending(ctx, tx, ev, &outcome)
		if err != nil || done {
			return err
		}

		if err := s.bookingRepo.UpdateStatus(ctx, tx, booking.ID, model.BookingStatusPending, model.BookingStatusCancelled, paymentIntent(ev)); err != nil {
			return err
		}
		outcome = outcomeCancelled
		return nil
	})
	return outcome, err
}

// lockPending records the event id and locks the booking. done is true when there is nothing
// left to do: the event was seen before, the booking is gone, or it is no longer pending.
// A paid completion that lands in the last two cases sets an outcome that asks for a refund.
func (s *PaymentServiceImpl) lockPending(ctx context.Context, tx pgx.Tx, ev *payment.WebhookEvent, outcome *string) (*model.Booking, bool, error) {
	fresh, err := s.webhookRepo.MarkProcessed(ctx, tx, ev.ID, ev.RawType)
	if err != nil {
		return nil, false, err
	}
	if !fresh {
		*outcome = outcomeDuplicate
		return nil, true, nil
	}

	booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, ev.BookingID)
	if errors.Is(err, apperrors.ErrBookingNotFound) {
		logger.WithComponent("payment").Warn("webhook for unknown booking",
			zap.String("event_id", ev.ID),
			zap.String("booking_id", ev.BookingID.String()))
		if ev.Type == payment.EventCheckoutCompleted {
			*outcome = outcomeUnknownBooking
		}
		return nil, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	if booking.Status != model.BookingStatusPending {
		if ev.Type == payment.EventCheckoutCompleted && !paidBy(booking, ev) {
			logger.WithComponent("payment").Warn("paid checkout for booking that is not pending",
				zap.String("booking_id", booking.ID.String()),
				zap.String("status", string(booking.Status)))
			*outcome = outcomeNotPending
		}
		return nil, true, nil
	}
	return booking, false, nil
}

// paidBy reports whether the booking was already confirmed by this event's payment.
func paidBy(booking *model.Booking, ev *payment.WebhookEvent) bool {
	return booking.Status == model.BookingStatusConfirmed &&
		ev.PaymentIntentID != "" &&
		booking.PaymentIntentID != nil &&
		*booking.PaymentIntentID == ev.PaymentIntentID
}

func paymentIntent(ev *payment.WebhookEvent) *string {
	if ev.PaymentIntentID == "" {
		return nil
	}
	id := ev.PaymentIntentID
	return &id
}

// claim falls through to the database dedupe when the guard is missing or unreachable.
func (s *PaymentServiceImpl) claim(ctx context.Context, eventID string) bool {
	if s.guard == nil {
		return true
	}
	ok, err := s.guard.Claim(ctx, eventID)
	if err != nil {
		logger.WithComponent("payment").Warn("webhook guard unavailable", zap.String("event_id", eventID), zap.Error(err))
		return true
	}
	return ok
}

func (s *PaymentServiceImpl) complete(ctx context.Context, eventID string) {
	if s.guard == nil {
		return
	}
	if err := s.guard.Complete(ctx, eventID); err != nil {
		logger.WithComponent("payment").Warn("failed to mark webhook event done", zap.String("event_id", eventID), zap.Error(err))
	}
}

func (s *PaymentServiceImpl) release(ctx context.Context, eventID string) {
	if s.guard == nil {
		return
	}
	if err := s.guard.Release(ctx, eventID); err != nil {
		logger.WithComponent("payment").Warn("failed to release webhook claim", zap.String("event_id", eventID), zap.Error(err))
	}
}

func (s *PaymentServiceImpl) enqueueConfirmation(ctx context.Context, bookingID uuid.UUID) {
	if s.emailQueue == nil {
		return
	}
	job := &model.EmailJob{BookingID: bookingID, RequestedAt: s.clock.Now().UTC()}
	if err := s.emailQueue.PublishEmailJob(ctx, job); err != nil {
		logger.WithComponent("payment").Error("failed to enqueue confirmation email",
			zap.String("booking_id", bookingID.String()),
			zap.Error(err))
	}
}
