package repository_test

import (
	"context"
	"testing"
	"time"

	"go-gin-event-booking/internal/database"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/repository"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBooking(t *testing.T, pool *pgxpool.Pool, eventID uuid.UUID, tt *model.TicketType, quantity int) *model.Booking {
	t.Helper()
	total := tt.Price.Mul(decimal.NewFromInt(int64(quantity)))
	booking := &model.Booking{
		UserID:         uuid.New(),
		EventID:        eventID,
		Status:         model.BookingStatusPending,
		TotalPrice:     total,
		CustomerName:   "Ada Lovelace",
		CustomerEmail:  "ada@example.com",
		IdempotencyKey: uuid.NewString(),
		Items: []model.BookingItem{{
			TicketTypeID: tt.ID,
			Quantity:     quantity,
			UnitPrice:    tt.Price,
			TotalPrice:   total,
		}},
		Attendees: []model.Attendee{{TicketTypeID: &tt.ID, Name: "Ada Lovelace", Email: "ada@example.com"}},
	}

	var created *model.Booking
	err := database.NewTxManager(pool).WithTx(context.Background(), func(tx pgx.Tx) error {
		var err error
		created, err = repository.NewBookingRepository(pool).Create(context.Background(), tx, booking)
		return err
	})
	require.NoError(t, err)
	return created
}

func TestBookingRepository_CreateAndFind(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := repository.NewBookingRepository(pool)
	organizer := createTestOrganizer(t, pool)
	event := createPublishedEvent(t, pool, organizer.ID, "booking-event", 51.5, -0.12)
	tt := createTestTicketType(t, pool, event.ID, "40.00", 10)

	created := createTestBooking(t, pool, event.ID, tt, 2)
	require.Len(t, created.Items, 1)
	require.Len(t, created.Attendees, 1)
	assert.Equal(t, model.BookingStatusPending, created.Status)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("80.00").Equal(found.TotalPrice))
	require.Len(t, found.Items, 1)
	assert.Equal(t, 2, found.Items[0].Quantity)
	require.Len(t, found.Attendees, 1)
	assert.Equal(t, "Ada Lovelace", found.Attendees[0].Name)

	list, err := repo.ListByUserID(ctx, created.UserID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := repository.NewBookingRepository(pool)
	txManager := database.NewTxManager(pool)
	organizer := createTestOrganizer(t, pool)
	event := createPublishedEvent(t, pool, organizer.ID, "status-event", 51.5, -0.12)
	tt := createTestTicketType(t, pool, event.ID, "10.00", 10)
	booking := createTestBooking(t, pool, event.ID, tt, 1)

	paymentIntent := "pi_123"
	err := txManager.WithTx(ctx, func(tx pgx.Tx) error {
		return repo.UpdateStatus(ctx, tx, booking.ID, model.BookingStatusPending, model.BookingStatusConfirmed, &paymentIntent)
	})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, found.Status)
	require.NotNil(t, found.PaymentIntentID)
	assert.Equal(t, paymentIntent, *found.PaymentIntentID)

	t.Run("second transition from pending loses", func(t *testing.T) {
		err := txManager.WithTx(ctx, func(tx pgx.Tx) error {
			return repo.UpdateStatus(ctx, tx, booking.ID, model.BookingStatusPending, model.BookingStatusCancelled, nil)
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidBookingStatus)
	})

	t.Run("terminal status", func(t *testing.T) {
		err := txManager.WithTx(ctx, func(tx pgx.Tx) error {
			return repo.UpdateStatus(ctx, tx, booking.ID, model.BookingStatusConfirmed, model.BookingStatusCancelled, nil)
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidBookingStatus)
	})
}

func TestBookingRepository_CheckoutSessionAndExpiry(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := repository.NewBookingRepository(pool)
	organizer := createTestOrganizer(t, pool)
	event := createPublishedEvent(t, pool, organizer.ID, "expiry-event", 51.5, -0.12)
	tt := createTestTicketType(t, pool, event.ID, "10.00", 10)
	booking := createTestBooking(t, pool, event.ID, tt, 1)

	now := time.Now()
	require.NoError(t, repo.SetCheckoutSession(ctx, booking.ID, "cs_test_1", now.Add(30*time.Minute)))
	assert.ErrorIs(t, repo.SetCheckoutSession(ctx, uuid.New(), "cs_test_2", now), apperrors.ErrBookingNotFound)

	ids, err := repo.ExpirePending(ctx, now.Add(-time.Hour), now)
	require.NoError(t, err)
	assert.Empty(t, ids)

	t.Run("open checkout page keeps the booking", func(t *testing.T) {
		ids, err := repo.ExpirePending(ctx, now.Add(time.Minute), now)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	ids, err = repo.ExpirePending(ctx, now.Add(time.Minute), now.Add(31*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{booking.ID}, ids)

	found, err := repo.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusCancelled, found.Status)
	require.NotNil(t, found.CheckoutSessionID)
	assert.Equal(t, "cs_test_1", *found.CheckoutSessionID)
	require.NotNil(t, found.CheckoutExpiresAt)
	assert.WithinDuration(t, now.Add(30*time.Minute), *found.CheckoutExpiresAt, time.Second)
}

func TestBookingRepository_ExpirePendingWithoutCheckout(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := repository.NewBookingRepository(pool)
	organizer := createTestOrganizer(t, pool)
	event := createPublishedEvent(t, pool, organizer.ID, "no-checkout-event", 51.5, -0.12)
	tt := createTestTicketType(t, pool, event.ID, "10.00", 10)
	booking := createTestBooking(t, pool, event.ID, tt, 1)

	now := time.Now()
	ids, err := repo.ExpirePending(ctx, now.Add(time.Minute), now)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{booking.ID}, ids)
}
