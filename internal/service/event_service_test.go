package service_test

import (
	"context"
	"strings"
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

type eventMocks struct {
	events      *repoMocks.MockEventRepository
	ticketTypes *repoMocks.MockTicketTypeRepository
	organizers  *repoMocks.MockOrganizerRepository
}

func setupEventService(t *testing.T) (service.EventService, eventMocks) {
	m := eventMocks{
		events:      repoMocks.NewMockEventRepository(t),
		ticketTypes: repoMocks.NewMockTicketTypeRepository(t),
		organizers:  repoMocks.NewMockOrganizerRepository(t),
	}
	return service.NewEventService(m.events, m.ticketTypes, m.organizers), m
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Jazz in the Park", "jazz-in-the-park"},
		{"  Rock & Roll!! 2026 ", "rock-roll-2026"},
		{"***", "event"},
		{strings.Repeat("a", 100), strings.Repeat("a", 80)},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Slugify(tt.title))
		})
	}
}

func TestEventService_List(t *testing.T) {
	ctx := context.Background()
	svc, m := setupEventService(t)

	m.events.EXPECT().List(ctx, model.EventListFilter{CategorySlug: "music", Search: "jazz", Limit: 10, Offset: 20}).
		Return([]*model.Event{}, nil).Once()

	events, err := svc.List(ctx, model.EventListQuery{Category: " music ", Search: "jazz", Page: 3, Limit: 10})

	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventService_GetBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("Published", func(t *testing.T) {
		svc, m := setupEventService(t)
		event := &model.Event{ID: uuid.New(), Slug: "jazz", Status: model.EventStatusPublished}
		m.events.EXPECT().FindBySlug(ctx, "jazz").Return(event, nil).Once()

		got, err := svc.GetBySlug(ctx, "jazz")

		require.NoError(t, err)
		assert.Equal(t, event, got)
	})

	t.Run("Draft is hidden", func(t *testing.T) {
		svc, m := setupEventService(t)
		m.events.EXPECT().FindBySlug(ctx, "jazz").Return(&model.Event{Status: model.EventStatusDraft}, nil).Once()

		_, err := svc.GetBySlug(ctx, "jazz")

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	organizer := &model.Organizer{ID: uuid.New(), UserID: userID}

	t.Run("Success", func(t *testing.T) {
		svc, m := setupEventService(t)
		m.organizers.EXPECT().FindByUserID(ctx, userID).Return(organizer, nil).Once()
		m.events.EXPECT().Create(ctx, mock.MatchedBy(func(p model.CreateEventParams) bool {
			return p.OrganizerID == organizer.ID && p.Slug == "jazz-in-the-park" && p.Title == "Jazz in the Park"
		})).Return(&model.Event{ID: uuid.New(), Slug: "jazz-in-the-park", Status: model.EventStatusDraft}, nil).Once()

		event, err := svc.Create(ctx, userID, model.CreateEventRequest{Title: " Jazz in the Park ", StartDate: "2026-08-01"})

		require.NoError(t, err)
		assert.Equal(t, model.EventStatusDraft, event.Status)
	})

	t.Run("Slug collision retries with a suffix", func(t *testing.T) {
		svc, m := setupEventService(t)
		m.organizers.EXPECT().FindByUserID(ctx, userID).Return(organizer, nil).Once()
		m.events.EXPECT().Create(ctx, mock.MatchedBy(func(p model.CreateEventParams) bool {
			return p.Slug == "jazz"
		})).Return(nil, apperrors.ErrSlugTaken).Once()
		m.events.EXPECT().Create(ctx, mock.MatchedBy(func(p model.CreateEventParams) bool {
			return strings.HasPrefix(p.Slug, "jazz-") && len(p.Slug) == len("jazz-")+8
		})).Return(&model.Event{ID: uuid.New()}, nil).Once()

		_, err := svc.Create(ctx, userID, model.CreateEventRequest{Title: "Jazz", StartDate: "2026-08-01"})

		require.NoError(t, err)
	})

	t.Run("Not an organizer", func(t *testing.T) {
		svc, m := setupEventService(t)
		m.organizers.EXPECT().FindByUserID(ctx, userID).Return(nil, apperrors.ErrOrganizerNotFound).Once()

		_, err := svc.Create(ctx, userID, model.CreateEventRequest{Title: "Jazz", StartDate: "2026-08-01"})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("Invalid dates and half a location", func(t *testing.T) {
		svc, m := setupEventService(t)
		m.organizers.EXPECT().FindByUserID(ctx, userID).Return(organizer, nil).Once()
		endDate := "2026-07-01"
		lat := 40.0

		_, err := svc.Create(ctx, userID, model.CreateEventRequest{
			Title:     "Jazz",
			StartDate: "2026-08-01",
			EndDate:   &endDate,
			Latitude:  &lat,
		})

		assert.Equal(t, []string{"end_date", "latitude"}, validationFields(err))
	})
}

func TestEventService_Transitions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	organizer := &model.Organizer{ID: uuid.New(), UserID: userID}

	t.Run("Publish a draft", func(t *testing.T) {
		svc, m := setupEventService(t)
		event := &model.Event{ID: uuid.New(), OrganizerID: organizer.ID, Status: model.EventStatusDraft}
		m.organizers.EXPECT().FindByUserID(ctx, userID).Return(organizer, nil).Once()
		m.events.EXPECT().FindByID(ctx, event.ID).Return(event, nil).Once()
		m.events.EXPECT().UpdateStatus(ctx, event.ID, model.EventStatusDraft, model.EventStatusPublished).
			Return(&model.Event{ID: event.ID, Status: model.EventStatusPublished}, nil).Once()

		got, err := svc.Publish(ctx, userID, event.ID)

		require.NoError(t, err)
		assert.Equal(t, model.EventStatusPublished, got.Status)
	})

	t.Run("Cannot publish a cancelled event", func(t *testing.T) {
		svc, m := setupEventService(t)
		event := &model.Event{ID: uuid.New(), OrganizerID: organizer.ID, Status: model.EventStatusCancelled}
		m.organizers.EXPECT().FindByUserID(ctx, userID).Return(organizer, nil).Once()
		m.events.EXPECT().FindByID(ctx, event.ID).Return(event, nil).Once()

		_, err := svc.Publish(ctx, userID, event.ID)

		assert.ErrorIs(t, err, apperrors.ErrInvalidEventStatus)
	})

	t.Run("Cannot cancel another organizer's event", func(t *testing.T) {
		svc, m := setupEventService(t)
		event := &model.Event{ID: uuid.New(), OrganizerID: uuid.New(), Status: model.EventStatusPublished}
		m.organizers.EXPECT().FindByUserID(ctx, userID).Return(organizer, nil).Once()
		m.events.EXPECT().FindByID(ctx, event.ID).Return(event, nil).Once()

		_, err := svc.Cancel(ctx, userID, event.ID)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestEventService_AddTicketType(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	organizer := &model.Organizer{ID: uuid.New(), UserID: userID}
	event := &model.Event{ID: uuid.New(), OrganizerID: organizer.ID, Status: model.EventStatusPublished}

	t.Run("Success", func(t *testing.T) {
		svc, m := setupEventService(t)
		m.organizers.EXPECT().FindByUserID(ctx, userID).Return(organizer, nil).Once()
		m.events.EXPECT().FindByID(ctx, event.ID).Return(event, nil).Once()
		m.ticketTypes.EXPECT().Create(ctx, &model.TicketType{
			EventID:           event.ID,
			Name:              "VIP",
			Price:             decimal.NewFromInt(100),
			QuantityAvailable: 50,
		}).Return(&model.TicketType{ID: uuid.New(), Name: "VIP"}, nil).Once()

		tt, err := svc.AddTicketType(ctx, userID, event.ID, model.CreateTicketTypeRequest{
			Name: "VIP", Price: decimal.NewFromInt(100), QuantityAvailable: 50,
		})

		require.NoError(t, err)
		assert.Equal(t, "VIP", tt.Name)
	})

	t.Run("Negative price", func(t *testing.T) {
		svc, m := setupEventService(t)
		m.organizers.EXPECT().FindByUserID(ctx, userID).Return(organizer, nil).Once()
		m.events.EXPECT().FindByID(ctx, event.ID).Return(event, nil).Once()

		_, err := svc.AddTicketType(ctx, userID, event.ID, model.CreateTicketTypeRequest{
			Name: "VIP", Price: decimal.NewFromInt(-1),
		})

		assert.Equal(t, []string{"price"}, validationFields(err))
	})
}
