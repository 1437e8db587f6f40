package repository_test

import (
	"context"
	"testing"

	"go-gin-event-booking/internal/database"
	"go-gin-event-booking/internal/repository"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketTypeRepository_IncrementSold(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := repository.NewTicketTypeRepository(pool)
	txManager := database.NewTxManager(pool)
	organizer := createTestOrganizer(t, pool)
	event := createPublishedEvent(t, pool, organizer.ID, "stock-event", 51.5, -0.12)
	tt := createTestTicketType(t, pool, event.ID, "15.00", 3)

	increment := func(quantity int) error {
		return txManager.WithTx(ctx, func(tx pgx.Tx) error {
			return repo.IncrementSold(ctx, tx, tt.ID, quantity)
		})
	}

	require.NoError(t, increment(2))
	assert.ErrorIs(t, increment(2), apperrors.ErrInsufficientStock)
	require.NoError(t, increment(1))

	found, err := repo.FindByIDs(ctx, []uuid.UUID{tt.ID})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, 3, found[0].QuantitySold)
	assert.Equal(t, 0, found[0].Remaining())

	listed, err := repo.ListByEventID(ctx, event.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestWebhookEventRepository_MarkProcessed(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := repository.NewWebhookEventRepository(pool)
	txManager := database.NewTxManager(pool)

	mark := func() bool {
		var first bool
		err := txManager.WithTx(ctx, func(tx pgx.Tx) error {
			var err error
			first, err = repo.MarkProcessed(ctx, tx, "evt_1", "checkout.session.completed")
			return err
		})
		require.NoError(t, err)
		return first
	}

	assert.True(t, mark())
	assert.False(t, mark())
}

func TestOrganizerRepository_CreateTwice(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	organizer := createTestOrganizer(t, pool)

	repo := repository.NewOrganizerRepository(pool)
	_, err := repo.Create(ctx, organizer)
	assert.ErrorIs(t, err, apperrors.ErrOrganizerExists)

	found, err := repo.FindByUserID(ctx, organizer.UserID)
	require.NoError(t, err)
	assert.Equal(t, organizer.ID, found.ID)
}
