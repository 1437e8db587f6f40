package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-gin-event-booking/internal/model"
	repoMocks "go-gin-event-booking/internal/repository/mocks"
	"go-gin-event-booking/internal/service"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParseNearbyQuery(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		params, err := service.ParseNearbyQuery(model.NearbyQuery{Lat: "40.7829", Lng: "-73.9654"})

		require.NoError(t, err)
		assert.Equal(t, 40.7829, params.Lat)
		assert.Equal(t, -73.9654, params.Lng)
		assert.Equal(t, model.DefaultNearbyRadius, params.RadiusMeters)
		assert.Equal(t, model.DefaultNearbyLimit, params.Limit)
		assert.Equal(t, 1, params.Page)
		assert.Equal(t, 0, params.Offset())
	})

	t.Run("Missing coordinates are reported alone", func(t *testing.T) {
		_, err := service.ParseNearbyQuery(model.NearbyQuery{Radius: "-1", Limit: "abc"})

		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"lat", "lng"}, validationFields(err))
	})

	t.Run("Missing lng only", func(t *testing.T) {
		_, err := service.ParseNearbyQuery(model.NearbyQuery{Lat: "10"})

		assert.Equal(t, []string{"lng"}, validationFields(err))
	})

	tests := []struct {
		name   string
		query  model.NearbyQuery
		fields []string
	}{
		{"Radius at max", model.NearbyQuery{Lat: "0", Lng: "0", Radius: "200000"}, nil},
		{"Radius above max", model.NearbyQuery{Lat: "0", Lng: "0", Radius: "200001"}, []string{"radius"}},
		{"Radius zero", model.NearbyQuery{Lat: "0", Lng: "0", Radius: "0"}, []string{"radius"}},
		{"Limit at max", model.NearbyQuery{Lat: "0", Lng: "0", Limit: "100"}, nil},
		{"Limit above max", model.NearbyQuery{Lat: "0", Lng: "0", Limit: "101"}, []string{"limit"}},
		{"Limit zero", model.NearbyQuery{Lat: "0", Lng: "0", Limit: "0"}, []string{"limit"}},
		{"Page zero", model.NearbyQuery{Lat: "0", Lng: "0", Page: "0"}, []string{"page"}},
		{"Latitude out of range", model.NearbyQuery{Lat: "90.5", Lng: "0"}, []string{"lat"}},
		{"Longitude out of range", model.NearbyQuery{Lat: "0", Lng: "-180.1"}, []string{"lng"}},
		{"Non numeric", model.NearbyQuery{Lat: "north", Lng: "0", Page: "first"}, []string{"lat", "page"}},
		{"Bad dates", model.NearbyQuery{Lat: "0", Lng: "0", DateFrom: "07/04/2026", DateTo: "2026-13-01"}, []string{"date_from", "date_to"}},
		{"NaN coordinates", model.NearbyQuery{Lat: "NaN", Lng: "nan"}, []string{"lat", "lng"}},
		{"Infinite coordinates", model.NearbyQuery{Lat: "Inf", Lng: "-Infinity"}, []string{"lat", "lng"}},
		{"NaN radius", model.NearbyQuery{Lat: "0", Lng: "0", Radius: "NaN"}, []string{"radius"}},
		{"Infinite radius", model.NearbyQuery{Lat: "0", Lng: "0", Radius: "+Inf"}, []string{"radius"}},
		{"Page offset overflows", model.NearbyQuery{Lat: "0", Lng: "0", Limit: "100", Page: "9223372036854775807"}, []string{"page"}},
		{"Page offset overflows default limit", model.NearbyQuery{Lat: "0", Lng: "0", Page: "107374184"}, []string{"page"}},
		{"Last page that fits", model.NearbyQuery{Lat: "0", Lng: "0", Limit: "100", Page: "21474837"}, nil},
		{"All violations collected", model.NearbyQuery{Lat: "91", Lng: "181", Radius: "300000", Limit: "500", Page: "-1"}, []string{"lat", "lng", "radius", "limit", "page"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseNearbyQuery(tt.query)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.fields, validationFields(err))
		})
	}
}

func nearbyRow(id uuid.UUID, title string, distance float64) *model.NearbyEventRow {
	return &model.NearbyEventRow{
		ID:             id,
		Title:          title,
		Slug:           title,
		StartDate:      "2026-07-04",
		Status:         model.EventStatusPublished,
		Location:       json.RawMessage(`{"lat":40.78,"lng":-73.96}`),
		DistanceMeters: distance,
	}
}

func relatedEvent(id uuid.UUID, title, categorySlug, startDate string) *model.Event {
	return &model.Event{
		ID:        id,
		Title:     title,
		StartDate: startDate,
		Status:    model.EventStatusPublished,
		Location:  "POINT(-73.9654 40.7829)",
		Category:  &model.Category{Slug: categorySlug, Name: categorySlug},
	}
}

func TestNearbyService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("Validation failure does not query the store", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewNearbyService(repo)

		result, err := svc.Search(ctx, model.NearbyQuery{Lng: "-73.9654"})

		assert.Nil(t, result)
		assert.Equal(t, []string{"lat"}, validationFields(err))
	})

	t.Run("Empty result", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewNearbyService(repo)

		repo.EXPECT().FindNearby(ctx, 40.7829, -73.9654, 50000.0, 20, 0).Return([]*model.NearbyEventRow{}, nil).Once()

		result, err := svc.Search(ctx, model.NearbyQuery{Lat: "40.7829", Lng: "-73.9654"})

		require.NoError(t, err)
		assert.NotNil(t, result.Events)
		assert.Empty(t, result.Events)
		assert.Equal(t, model.Pagination{Page: 1, Limit: 20}, result.Pagination)

		body, err := json.Marshal(result)
		require.NoError(t, err)
		assert.JSONEq(t, `{"events":[],"pagination":{"page":1,"limit":20,"total":0,"totalPages":0,"hasNextPage":false,"hasPreviousPage":false}}`, string(body))
	})

	t.Run("Keeps ranked order and merges relations", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewNearbyService(repo)

		first, second, third := uuid.New(), uuid.New(), uuid.New()
		repo.EXPECT().FindNearby(ctx, 40.7829, -73.9654, 50000.0, 3, 0).Return([]*model.NearbyEventRow{
			nearbyRow(first, "closest", 120.5),
			nearbyRow(second, "middle", 900),
			nearbyRow(third, "furthest", 4200),
		}, nil).Once()
		// relations come back in a different order and one is missing
		repo.EXPECT().FindRelationsByIDs(ctx, []uuid.UUID{first, second, third}).Return([]*model.Event{
			relatedEvent(third, "Furthest Show", "music", "2026-07-04"),
			relatedEvent(first, "Closest Show", "music", "2026-07-04"),
		}, nil).Once()

		result, err := svc.Search(ctx, model.NearbyQuery{Lat: "40.7829", Lng: "-73.9654", Limit: "3"})

		require.NoError(t, err)
		require.Len(t, result.Events, 3)
		assert.Equal(t, first, result.Events[0].ID)
		assert.Equal(t, second, result.Events[1].ID)
		assert.Equal(t, third, result.Events[2].ID)

		assert.Equal(t, "Closest Show", result.Events[0].Title)
		assert.Equal(t, 120.5, result.Events[0].DistanceMeters)
		assert.Equal(t, &model.Coordinates{Lat: 40.7829, Lng: -73.9654}, result.Events[0].LocationCoordinates)

		// fallback to the ranked row
		assert.Equal(t, "middle", result.Events[1].Title)
		assert.Nil(t, result.Events[1].Category)
		assert.Equal(t, &model.Coordinates{Lat: 40.78, Lng: -73.96}, result.Events[1].LocationCoordinates)

		assert.Equal(t, 3, result.Pagination.Total)
		assert.Equal(t, 1, result.Pagination.TotalPages)
		assert.False(t, result.Pagination.HasNextPage)
		assert.False(t, result.Pagination.HasPreviousPage)
	})

	t.Run("Category filter removes other categories", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewNearbyService(repo)

		jazz, talk := uuid.New(), uuid.New()
		repo.EXPECT().FindNearby(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]*model.NearbyEventRow{
			nearbyRow(jazz, "jazz", 10),
			nearbyRow(talk, "talk", 20),
		}, nil).Once()
		repo.EXPECT().FindRelationsByIDs(ctx, mock.Anything).Return([]*model.Event{
			relatedEvent(jazz, "Jazz Night", "music", "2026-07-04"),
			relatedEvent(talk, "Tech Talk", "conference", "2026-07-04"),
		}, nil).Once()

		result, err := svc.Search(ctx, model.NearbyQuery{Lat: "40.7829", Lng: "-73.9654", Category: "music"})

		require.NoError(t, err)
		require.Len(t, result.Events, 1)
		assert.Equal(t, jazz, result.Events[0].ID)
		assert.Equal(t, 1, result.Pagination.Total)
	})

	t.Run("Text and date filters", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewNearbyService(repo)

		a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
		repo.EXPECT().FindNearby(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]*model.NearbyEventRow{
			nearbyRow(a, "a", 1), nearbyRow(b, "b", 2), nearbyRow(c, "c", 3), nearbyRow(d, "d", 4),
		}, nil).Once()

		inDescription := relatedEvent(b, "Evening", "music", "2026-07-10")
		inDescription.Description = strPtr("Live JAZZ quartet")
		atVenue := relatedEvent(c, "Matinee", "music", "2026-07-31")
		atVenue.LocationName = strPtr("Jazz Standard")
		repo.EXPECT().FindRelationsByIDs(ctx, mock.Anything).Return([]*model.Event{
			relatedEvent(a, "Jazz Brunch", "music", "2026-06-30"),
			inDescription,
			atVenue,
			relatedEvent(d, "Rock Night", "music", "2026-07-10"),
		}, nil).Once()

		result, err := svc.Search(ctx, model.NearbyQuery{
			Lat: "40.7829", Lng: "-73.9654",
			Search: "jazz", DateFrom: "2026-07-01", DateTo: "2026-07-31",
		})

		require.NoError(t, err)
		require.Len(t, result.Events, 2)
		assert.Equal(t, b, result.Events[0].ID)
		assert.Equal(t, c, result.Events[1].ID)
	})

	t.Run("Second page offset", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewNearbyService(repo)

		repo.EXPECT().FindNearby(ctx, 1.5, 2.5, 1000.0, 10, 10).Return([]*model.NearbyEventRow{}, nil).Once()

		result, err := svc.Search(ctx, model.NearbyQuery{Lat: "1.5", Lng: "2.5", Radius: "1000", Limit: "10", Page: "2"})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Pagination.Page)
		assert.True(t, result.Pagination.HasPreviousPage)
	})

	t.Run("Store failure", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewNearbyService(repo)

		repo.EXPECT().FindNearby(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("function nearby_events does not exist")).Once()

		result, err := svc.Search(ctx, model.NearbyQuery{Lat: "0", Lng: "0"})

		assert.Nil(t, result)
		var upstream *apperrors.UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, "store", upstream.Service)
		assert.Contains(t, upstream.Error(), "function nearby_events does not exist")
	})

	t.Run("Relations failure", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewNearbyService(repo)

		repo.EXPECT().FindNearby(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]*model.NearbyEventRow{nearbyRow(uuid.New(), "x", 1)}, nil).Once()
		repo.EXPECT().FindRelationsByIDs(ctx, mock.Anything).Return(nil, errors.New("timeout")).Once()

		_, err := svc.Search(ctx, model.NearbyQuery{Lat: "0", Lng: "0"})

		var upstream *apperrors.UpstreamError
		assert.ErrorAs(t, err, &upstream)
	})
}
