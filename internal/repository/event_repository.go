package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-gin-event-booking/internal/geo"
	"go-gin-event-booking/internal/model"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, params model.CreateEventParams) (*model.Event, error)
	List(ctx context.Context, filter model.EventListFilter) ([]*model.Event, error)
	ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]*model.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	FindBySlug(ctx context.Context, slug string) (*model.Event, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) (*model.Event, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.EventStatus) (*model.Event, error)

	// FindNearby calls the nearby_events ranking function; rows come back ordered by distance.
	FindNearby(ctx context.Context, lat, lng, radiusMeters float64, limit, offset int) ([]*model.NearbyEventRow, error)
	// FindRelationsByIDs loads events with category, organizer, images and ticket types.
	// The result order is unspecified.
	FindRelationsByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Event, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `
	e.id, e.organizer_id, e.category_id, e.title, e.slug, e.description,
	e.start_date::text, e.start_time::text, e.end_date::text, e.end_time::text,
	e.location_name, e.location_address, ST_AsText(e.location),
	e.status, e.featured, e.created_at, e.updated_at`

func eventScanTargets(event *model.Event, location **string) []any {
	return []any{
		&event.ID,
		&event.OrganizerID,
		&event.CategoryID,
		&event.Title,
		&event.Slug,
		&event.Description,
		&event.StartDate,
		&event.StartTime,
		&event.EndDate,
		&event.EndTime,
		&event.LocationName,
		&event.LocationAddress,
		location,
		&event.Status,
		&event.Featured,
		&event.CreatedAt,
		&event.UpdatedAt,
	}
}

func finishEvent(event *model.Event, location *string) *model.Event {
	if location != nil {
		event.Location = *location
		event.LocationCoordinates = geo.ParseCoordinates(*location)
	}
	return event
}

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	var location *string
	if err := row.Scan(eventScanTargets(&event, &location)...); err != nil {
		return nil, err
	}
	return finishEvent(&event, location), nil
}

func collectEvents(rows pgx.Rows) ([]*model.Event, error) {
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func locationExpr(argPos int) string {
	return fmt.Sprintf("ST_SetSRID(ST_MakePoint($%d, $%d), 4326)::geography", argPos, argPos+1)
}

func (r *EventRepositoryImpl) Create(ctx context.Context, params model.CreateEventParams) (*model.Event, error) {
	location := "NULL"
	args := []any{
		params.OrganizerID, params.CategoryID, params.Title, params.Slug, params.Description,
		params.StartDate, params.StartTime, params.EndDate, params.EndTime,
		params.LocationName, params.LocationAddress, params.Featured,
	}
	if params.Latitude != nil && params.Longitude != nil {
		location = locationExpr(len(args) + 1)
		args = append(args, *params.Longitude, *params.Latitude)
	}

	query := fmt.Sprintf(`
		INSERT INTO events AS e (
			organizer_id, category_id, title, slug, description,
			start_date, start_time, end_date, end_time,
			location_name, location_address, featured, location, status
		)
		VALUES ($1, $2, $3, $4, $5,
			$6::text::date, $7::text::time, $8::text::date, $9::text::time,
			$10, $11, $12, %s, 'draft')
		RETURNING %s
	`, location, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context, filter model.EventListFilter) ([]*model.Event, error) {
	where := []string{"e.status = 'published'"}
	args := []any{}
	argPos := 1

	if filter.CategorySlug != "" {
		where = append(where, fmt.Sprintf("c.slug = $%d", argPos))
		args = append(args, filter.CategorySlug)
		argPos++
	}
	if filter.Search != "" {
		where = append(where, fmt.Sprintf("(e.title ILIKE $%d OR e.description ILIKE $%d OR e.location_name ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.Featured != nil {
		where = append(where, fmt.Sprintf("e.featured = $%d", argPos))
		args = append(args, *filter.Featured)
		argPos++
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM events e
		LEFT JOIN categories c ON c.id = e.category_id
		WHERE %s
		ORDER BY e.start_date ASC, e.id ASC
		LIMIT $%d OFFSET $%d
	`, eventColumns, strings.Join(where, " AND "), argPos, argPos+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func (r *EventRepositoryImpl) ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events e
		WHERE e.organizer_id = $1
		ORDER BY e.created_at DESC
	`, eventColumns)

	rows, err := r.pool.Query(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events e WHERE e.id = $1`, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*model.Event, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `SELECT id FROM events WHERE slug = $1`, slug).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	events, err := r.FindRelationsByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, apperrors.ErrEventNotFound
	}
	return events[0], nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	add := func(column, cast string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d%s", column, argPos, cast))
		args = append(args, value)
		argPos++
	}

	if params.CategoryID != nil {
		add("category_id", "", *params.CategoryID)
	}
	if params.Title != nil {
		add("title", "", *params.Title)
	}
	if params.Description != nil {
		add("description", "", *params.Description)
	}
	if params.StartDate != nil {
		add("start_date", "::text::date", *params.StartDate)
	}
	if params.StartTime != nil {
		add("start_time", "::text::time", *params.StartTime)
	}
	if params.EndDate != nil {
		add("end_date", "::text::date", *params.EndDate)
	}
	if params.EndTime != nil {
		add("end_time", "::text::time", *params.EndTime)
	}
	if params.LocationName != nil {
		add("location_name", "", *params.LocationName)
	}
	if params.LocationAddress != nil {
		add("location_address", "", *params.LocationAddress)
	}
	if params.Featured != nil {
		add("featured", "", *params.Featured)
	}
	if params.Latitude != nil && params.Longitude != nil {
		sets = append(sets, "location = "+locationExpr(argPos))
		args = append(args, *params.Longitude, *params.Latitude)
		argPos += 2
	}

	if len(sets) == 0 {
		return nil, apperrors.NewValidationError("body", "at least one field is required")
	}

	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE events AS e
		SET %s
		WHERE e.id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.EventStatus) (*model.Event, error) {
	query := fmt.Sprintf(`
		UPDATE events AS e
		SET status = $1, updated_at = $2
		WHERE e.id = $3 AND e.status = $4
		RETURNING %s
	`, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, to, time.Now().UTC(), id, from))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// either missing or moved on concurrently
			if _, findErr := r.FindByID(ctx, id); findErr != nil {
				return nil, findErr
			}
			return nil, apperrors.ErrInvalidEventStatus
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) FindNearby(ctx context.Context, lat, lng, radiusMeters float64, limit, offset int) ([]*model.NearbyEventRow, error) {
	query := `
		SELECT id, organizer_id, category_id, title, slug, description,
		       start_date, start_time, location_name, location_address, location,
		       status, featured, distance_meters
		FROM nearby_events($1, $2, $3, $4, $5)
	`

	rows, err := r.pool.Query(ctx, query, lat, lng, radiusMeters, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*model.NearbyEventRow, 0, limit)
	for rows.Next() {
		var row model.NearbyEventRow
		var location []byte
		err := rows.Scan(
			&row.ID,
			&row.OrganizerID,
			&row.CategoryID,
			&row.Title,
			&row.Slug,
			&row.Description,
			&row.StartDate,
			&row.StartTime,
			&row.LocationName,
			&row.LocationAddress,
			&location,
			&row.Status,
			&row.Featured,
			&row.DistanceMeters,
		)
		if err != nil {
			return nil, err
		}
		row.Location = location
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *EventRepositoryImpl) FindRelationsByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Event, error) {
	if len(ids) == 0 {
		return []*model.Event{}, nil
	}

	query := fmt.Sprintf(`
		SELECT %s,
		       c.id, c.name, c.slug, c.description,
		       o.id, o.user_id, o.business_name, o.contact_email, o.description, o.website,
		       o.verification_status, o.created_at, o.updated_at
		FROM events e
		LEFT JOIN categories c ON c.id = e.category_id
		JOIN organizers o ON o.id = e.organizer_id
		WHERE e.id = ANY($1)
	`, eventColumns)

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0, len(ids))
	byID := make(map[uuid.UUID]*model.Event, len(ids))
	for rows.Next() {
		var event model.Event
		var location *string
		var categoryID *uuid.UUID
		var categoryName, categorySlug, categoryDescription *string
		var organizer model.Organizer

		targets := eventScanTargets(&event, &location)
		targets = append(targets,
			&categoryID, &categoryName, &categorySlug, &categoryDescription,
			&organizer.ID, &organizer.UserID, &organizer.BusinessName, &organizer.ContactEmail,
			&organizer.Description, &organizer.Website, &organizer.VerificationStatus,
			&organizer.CreatedAt, &organizer.UpdatedAt,
		)
		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}

		if categoryID != nil {
			event.Category = &model.Category{
				ID:          *categoryID,
				Name:        deref(categoryName),
				Slug:        deref(categorySlug),
				Description: categoryDescription,
			}
		}
		event.Organizer = &organizer
		finishEvent(&event, location)
		events = append(events, &event)
		byID[event.ID] = &event
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachImages(ctx, ids, byID); err != nil {
		return nil, err
	}
	if err := r.attachTicketTypes(ctx, ids, byID); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepositoryImpl) attachImages(ctx context.Context, ids []uuid.UUID, byID map[uuid.UUID]*model.Event) error {
	rows, err := r.pool.Query(ctx, `
		SELECT id, event_id, image_url, alt_text, is_primary, sort_order
		FROM event_images
		WHERE event_id = ANY($1)
		ORDER BY event_id, sort_order, id
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var img model.EventImage
		if err := rows.Scan(&img.ID, &img.EventID, &img.ImageURL, &img.AltText, &img.IsPrimary, &img.SortOrder); err != nil {
			return err
		}
		if event, ok := byID[img.EventID]; ok {
			event.Images = append(event.Images, img)
		}
	}
	return rows.Err()
}

func (r *EventRepositoryImpl) attachTicketTypes(ctx context.Context, ids []uuid.UUID, byID map[uuid.UUID]*model.Event) error {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM ticket_types
		WHERE event_id = ANY($1)
		ORDER BY event_id, price, id
	`, ticketTypeColumns), ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		tt, err := scanTicketType(rows)
		if err != nil {
			return err
		}
		if event, ok := byID[tt.EventID]; ok {
			event.TicketTypes = append(event.TicketTypes, *tt)
		}
	}
	return rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
