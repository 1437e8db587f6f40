package service_test

import (
	"context"
	"testing"

	"go-gin-event-booking/internal/model"
	repoMocks "go-gin-event-booking/internal/repository/mocks"
	"go-gin-event-booking/internal/service"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrganizerService_Register(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo := repoMocks.NewMockOrganizerRepository(t)
		svc := service.NewOrganizerService(repo)

		repo.EXPECT().Create(ctx, mock.MatchedBy(func(o *model.Organizer) bool {
			return o.UserID == userID && o.BusinessName == "Acme Events" && o.VerificationStatus == model.VerificationPending
		})).Return(&model.Organizer{ID: uuid.New(), UserID: userID}, nil).Once()

		organizer, err := svc.Register(ctx, userID, model.RegisterOrganizerRequest{
			BusinessName: " Acme Events ",
			ContactEmail: "hello@acme.test",
		})

		require.NoError(t, err)
		assert.Equal(t, userID, organizer.UserID)
	})

	t.Run("Second profile", func(t *testing.T) {
		repo := repoMocks.NewMockOrganizerRepository(t)
		svc := service.NewOrganizerService(repo)

		repo.EXPECT().Create(ctx, mock.Anything).Return(nil, apperrors.ErrOrganizerExists).Once()

		_, err := svc.Register(ctx, userID, model.RegisterOrganizerRequest{BusinessName: "Acme", ContactEmail: "a@acme.test"})

		assert.ErrorIs(t, err, apperrors.ErrOrganizerExists)
	})
}

func TestOrganizerService_UpdateMine(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	organizer := &model.Organizer{ID: uuid.New(), UserID: userID}

	t.Run("Empty update", func(t *testing.T) {
		svc := service.NewOrganizerService(repoMocks.NewMockOrganizerRepository(t))

		_, err := svc.UpdateMine(ctx, userID, model.UpdateOrganizerParams{})

		assert.Equal(t, []string{"body"}, validationFields(err))
	})

	t.Run("Success", func(t *testing.T) {
		repo := repoMocks.NewMockOrganizerRepository(t)
		svc := service.NewOrganizerService(repo)
		params := model.UpdateOrganizerParams{Website: strPtr("https://acme.test")}

		repo.EXPECT().FindByUserID(ctx, userID).Return(organizer, nil).Once()
		repo.EXPECT().Update(ctx, organizer.ID, params).Return(organizer, nil).Once()

		_, err := svc.UpdateMine(ctx, userID, params)

		require.NoError(t, err)
	})
}

func TestOrganizerService_Dashboard(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	organizer := &model.Organizer{ID: uuid.New(), UserID: userID}

	repo := repoMocks.NewMockOrganizerRepository(t)
	svc := service.NewOrganizerService(repo)
	stats := &model.DashboardStats{TotalEvents: 3, TicketsSold: 12, Revenue: decimal.NewFromInt(600)}

	repo.EXPECT().FindByUserID(ctx, userID).Return(organizer, nil).Once()
	repo.EXPECT().DashboardStats(ctx, organizer.ID).Return(stats, nil).Once()

	got, err := svc.Dashboard(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, stats, got)
}
