package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-gin-event-booking/internal/model"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrganizerRepository interface {
	Create(ctx context.Context, organizer *model.Organizer) (*model.Organizer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organizer, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Organizer, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateOrganizerParams) (*model.Organizer, error)
	DashboardStats(ctx context.Context, organizerID uuid.UUID) (*model.DashboardStats, error)
}

type OrganizerRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewOrganizerRepository(pool *pgxpool.Pool) OrganizerRepository {
	return &OrganizerRepositoryImpl{
		pool: pool,
	}
}

const organizerColumns = `id, user_id, business_name, contact_email, description, website, verification_status, created_at, updated_at`

func scanOrganizer(row pgx.Row) (*model.Organizer, error) {
	var o model.Organizer
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.BusinessName,
		&o.ContactEmail,
		&o.Description,
		&o.Website,
		&o.VerificationStatus,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrganizerNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrganizerRepositoryImpl) Create(ctx context.Context, organizer *model.Organizer) (*model.Organizer, error) {
	query := fmt.Sprintf(`
		INSERT INTO organizers (user_id, business_name, contact_email, description, website, verification_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`, organizerColumns)

	created, err := scanOrganizer(r.pool.QueryRow(ctx, query,
		organizer.UserID, organizer.BusinessName, organizer.ContactEmail,
		organizer.Description, organizer.Website, model.VerificationPending,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrOrganizerExists
		}
		return nil, fmt.Errorf("failed to create organizer: %w", err)
	}
	return created, nil
}

func (r *OrganizerRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Organizer, error) {
	query := fmt.Sprintf(`SELECT %s FROM organizers WHERE id = $1`, organizerColumns)
	return scanOrganizer(r.pool.QueryRow(ctx, query, id))
}

func (r *OrganizerRepositoryImpl) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Organizer, error) {
	query := fmt.Sprintf(`SELECT %s FROM organizers WHERE user_id = $1`, organizerColumns)
	return scanOrganizer(r.pool.QueryRow(ctx, query, userID))
}

func (r *OrganizerRepositoryImpl) Update(ctx context.Context, id uuid.UUID, params model.UpdateOrganizerParams) (*model.Organizer, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.BusinessName != nil {
		sets = append(sets, fmt.Sprintf("business_name = $%d", argPos))
		args = append(args, *params.BusinessName)
		argPos++
	}
	if params.ContactEmail != nil {
		sets = append(sets, fmt.Sprintf("contact_email = $%d", argPos))
		args = append(args, *params.ContactEmail)
		argPos++
	}
	if params.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argPos))
		args = append(args, *params.Description)
		argPos++
	}
	if params.Website != nil {
		sets = append(sets, fmt.Sprintf("website = $%d", argPos))
		args = append(args, *params.Website)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.NewValidationError("body", "at least one field is required")
	}

	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE organizers
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, organizerColumns)

	return scanOrganizer(r.pool.QueryRow(ctx, query, args...))
}

func (r *OrganizerRepositoryImpl) DashboardStats(ctx context.Context, organizerID uuid.UUID) (*model.DashboardStats, error) {
	query := `
		WITH organizer_events AS (
			SELECT id, status FROM events WHERE organizer_id = $1
		),
		organizer_bookings AS (
			SELECT b.id, b.status, b.total_price
			FROM bookings b
			JOIN organizer_events e ON e.id = b.event_id
		)
		SELECT
			(SELECT COUNT(*) FROM organizer_events),
			(SELECT COUNT(*) FROM organizer_events WHERE status = 'published'),
			(SELECT COUNT(*) FROM organizer_events WHERE status = 'draft'),
			(SELECT COUNT(*) FROM organizer_bookings),
			(SELECT COUNT(*) FROM organizer_bookings WHERE status = 'confirmed'),
			(SELECT COUNT(*) FROM organizer_bookings WHERE status = 'pending'),
			(SELECT COALESCE(SUM(bi.quantity), 0)
			   FROM booking_items bi
			   JOIN organizer_bookings b ON b.id = bi.booking_id
			  WHERE b.status = 'confirmed'),
			(SELECT COALESCE(SUM(total_price), 0) FROM organizer_bookings WHERE status = 'confirmed')
	`

	var stats model.DashboardStats
	err := r.pool.QueryRow(ctx, query, organizerID).Scan(
		&stats.TotalEvents,
		&stats.PublishedEvents,
		&stats.DraftEvents,
		&stats.TotalBookings,
		&stats.ConfirmedBookings,
		&stats.PendingBookings,
		&stats.TicketsSold,
		&stats.Revenue,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	return &stats, nil
}
