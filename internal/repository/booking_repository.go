package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-gin-event-booking/internal/model"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*model.Booking, error)
	SetCheckoutSession(ctx context.Context, id uuid.UUID, sessionID string, expiresAt time.Time) error
	// ExpirePending cancels pending bookings created before the cutoff and returns their ids.
	// A booking whose checkout page is still open at now is left alone.
	ExpirePending(ctx context.Context, createdBefore, now time.Time) ([]uuid.UUID, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error)
	FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Booking, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to model.BookingStatus, paymentIntentID *string) error
}

type BookingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &BookingRepositoryImpl{
		pool: pool,
	}
}

// queryer is satisfied by both the pool and a transaction.
type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const bookingColumns = `
	id, user_id, event_id, status, total_price, customer_name, customer_email, customer_phone,
	idempotency_key, checkout_session_id, checkout_expires_at, payment_intent_id, created_at, updated_at`

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var b model.Booking
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.EventID,
		&b.Status,
		&b.TotalPrice,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.IdempotencyKey,
		&b.CheckoutSessionID,
		&b.CheckoutExpiresAt,
		&b.PaymentIntentID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts the booking, its items and its attendees. Items and attendees go out as one batch
// on the same transaction, so the caller's commit makes all of them visible together.
func (r *BookingRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error) {
	query := fmt.Sprintf(`
		INSERT INTO bookings (
			user_id, event_id, status, total_price, customer_name, customer_email,
			customer_phone, idempotency_key
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`, bookingColumns)

	created, err := scanBooking(tx.QueryRow(ctx, query,
		booking.UserID, booking.EventID, booking.Status, booking.TotalPrice,
		booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone, booking.IdempotencyKey,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	batch := &pgx.Batch{}
	for _, item := range booking.Items {
		batch.Queue(`
			INSERT INTO booking_items (booking_id, ticket_type_id, quantity, unit_price, total_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, created.ID, item.TicketTypeID, item.Quantity, item.UnitPrice, item.TotalPrice)
	}
	for _, attendee := range booking.Attendees {
		batch.Queue(`
			INSERT INTO attendees (booking_id, ticket_type_id, name, email)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, created.ID, attendee.TicketTypeID, attendee.Name, attendee.Email)
	}

	results := tx.SendBatch(ctx, batch)
	items := make([]model.BookingItem, len(booking.Items))
	for i, item := range booking.Items {
		item.BookingID = created.ID
		if err := results.QueryRow().Scan(&item.ID); err != nil {
			results.Close()
			return nil, fmt.Errorf("failed to create booking item: %w", err)
		}
		items[i] = item
	}
	attendees := make([]model.Attendee, len(booking.Attendees))
	for i, attendee := range booking.Attendees {
		attendee.BookingID = created.ID
		if err := results.QueryRow().Scan(&attendee.ID); err != nil {
			results.Close()
			return nil, fmt.Errorf("failed to create attendee: %w", err)
		}
		attendees[i] = attendee
	}
	if err := results.Close(); err != nil {
		return nil, fmt.Errorf("failed to create booking lines: %w", err)
	}

	created.Items = items
	created.Attendees = attendees
	return created, nil
}

func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	return r.findByID(ctx, r.pool, id, "")
}

func (r *BookingRepositoryImpl) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Booking, error) {
	return r.findByID(ctx, tx, id, "FOR UPDATE")
}

func (r *BookingRepositoryImpl) findByID(ctx context.Context, q queryer, id uuid.UUID, lock string) (*model.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1 %s`, bookingColumns, lock)

	booking, err := scanBooking(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	if err := r.loadLines(ctx, q, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *BookingRepositoryImpl) loadLines(ctx context.Context, q queryer, booking *model.Booking) error {
	rows, err := q.Query(ctx, `
		SELECT id, booking_id, ticket_type_id, quantity, unit_price, total_price
		FROM booking_items
		WHERE booking_id = $1
		ORDER BY id
	`, booking.ID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var item model.BookingItem
		if err := rows.Scan(&item.ID, &item.BookingID, &item.TicketTypeID, &item.Quantity, &item.UnitPrice, &item.TotalPrice); err != nil {
			rows.Close()
			return err
		}
		booking.Items = append(booking.Items, item)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = q.Query(ctx, `
		SELECT id, booking_id, ticket_type_id, name, email
		FROM attendees
		WHERE booking_id = $1
		ORDER BY created_at, id
	`, booking.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var attendee model.Attendee
		if err := rows.Scan(&attendee.ID, &attendee.BookingID, &attendee.TicketTypeID, &attendee.Name, &attendee.Email); err != nil {
			return err
		}
		booking.Attendees = append(booking.Attendees, attendee)
	}
	return rows.Err()
}

func (r *BookingRepositoryImpl) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*model.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, bookingColumns)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*model.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus moves a booking from one status to another. It fails with ErrInvalidBookingStatus
// when the booking is no longer in the expected status.
func (r *BookingRepositoryImpl) UpdateStatus(
	ctx context.Context,
	tx pgx.Tx,
	id uuid.UUID,
	from, to model.BookingStatus,
	paymentIntentID *string,
) error {
	if !from.CanTransitionTo(to) {
		return apperrors.ErrInvalidBookingStatus
	}

	query := `
		UPDATE bookings
		SET status = $1, payment_intent_id = COALESCE($2, payment_intent_id), updated_at = $3
		WHERE id = $4 AND status = $5
	`

	result, err := tx.Exec(ctx, query, to, paymentIntentID, time.Now().UTC(), id, from)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrInvalidBookingStatus
	}

	return nil
}

func (r *BookingRepositoryImpl) SetCheckoutSession(ctx context.Context, id uuid.UUID, sessionID string, expiresAt time.Time) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE bookings SET checkout_session_id = $1, checkout_expires_at = $2, updated_at = $3 WHERE id = $4`,
		sessionID, expiresAt.UTC(), time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepositoryImpl) ExpirePending(ctx context.Context, createdBefore, now time.Time) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND created_at < $3
			AND (checkout_expires_at IS NULL OR checkout_expires_at <= $4)
		RETURNING id
	`, model.BookingStatusCancelled, model.BookingStatusPending, createdBefore, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
