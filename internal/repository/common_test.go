package repository_test

import (
	"context"
	"testing"

	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/repository"
	"go-gin-event-booking/internal/testutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	pool := testutil.SetupPostgres(t)
	testutil.Truncate(t, pool, "processed_webhook_events", "bookings", "ticket_types", "events", "organizers", "categories")
	return pool
}

func createTestOrganizer(t *testing.T, pool *pgxpool.Pool) *model.Organizer {
	t.Helper()
	organizer, err := repository.NewOrganizerRepository(pool).Create(context.Background(), &model.Organizer{
		UserID:       uuid.New(),
		BusinessName: "Riverside Promotions",
		ContactEmail: "hello@riverside.test",
	})
	require.NoError(t, err)
	return organizer
}

// createPublishedEvent creates an event at the given point and publishes it.
func createPublishedEvent(t *testing.T, pool *pgxpool.Pool, organizerID uuid.UUID, slug string, lat, lng float64) *model.Event {
	t.Helper()
	event := createDraftEvent(t, pool, organizerID, slug, lat, lng)
	published, err := repository.NewEventRepository(pool).UpdateStatus(context.Background(), event.ID, model.EventStatusDraft, model.EventStatusPublished)
	require.NoError(t, err)
	return published
}

func createDraftEvent(t *testing.T, pool *pgxpool.Pool, organizerID uuid.UUID, slug string, lat, lng float64) *model.Event {
	t.Helper()
	event, err := repository.NewEventRepository(pool).Create(context.Background(), model.CreateEventParams{
		OrganizerID: organizerID,
		Title:       slug,
		Slug:        slug,
		StartDate:   "2026-08-01",
		Latitude:    &lat,
		Longitude:   &lng,
	})
	require.NoError(t, err)
	return event
}

func createTestTicketType(t *testing.T, pool *pgxpool.Pool, eventID uuid.UUID, price string, available int) *model.TicketType {
	t.Helper()
	tt, err := repository.NewTicketTypeRepository(pool).Create(context.Background(), &model.TicketType{
		EventID:           eventID,
		Name:              "General",
		Price:             decimal.RequireFromString(price),
		QuantityAvailable: available,
	})
	require.NoError(t, err)
	return tt
}
