package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-gin-event-booking/internal/handler"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/service/mocks"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNearbySearch(t *testing.T) {
	setup := func(t *testing.T) (*mocks.MockNearbyService, http.Handler) {
		mockService := mocks.NewMockNearbyService(t)
		router := newTestRouter()
		handler.NewNearbyHandler(mockService).RegisterRoutes(router)
		return mockService, router
	}

	t.Run("Empty result", func(t *testing.T) {
		mockService, router := setup(t)

		mockService.EXPECT().Search(mock.Anything, model.NearbyQuery{Lat: "40.7829", Lng: "-73.9654"}).
			Return(&model.NearbySearchResult{
				Events:     []*model.NearbyEvent{},
				Pagination: model.NewPagination(1, 20, 0),
			}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/events/nearby?lat=40.7829&lng=-73.9654", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"events": [],
			"pagination": {"page":1,"limit":20,"total":0,"totalPages":0,"hasNextPage":false,"hasPreviousPage":false}
		}`, w.Body.String())
	})

	t.Run("Validation failure", func(t *testing.T) {
		mockService, router := setup(t)

		mockService.EXPECT().Search(mock.Anything, mock.Anything).
			Return(nil, apperrors.NewValidationError("lat", "lat is required")).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/events/nearby?lng=1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(w.Body)
		assert.Equal(t, "Validation failed", body.Error)
		if assert.Len(t, body.Details, 1) {
			assert.Equal(t, "lat", body.Details[0].Field)
			assert.Equal(t, "lat is required", body.Details[0].Message)
		}
	})

	t.Run("Store failure passes the message through", func(t *testing.T) {
		mockService, router := setup(t)

		mockService.EXPECT().Search(mock.Anything, mock.Anything).
			Return(nil, apperrors.NewUpstreamError("store", fmt.Errorf("nearby events query failed: %w", errors.New("timeout")))).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/events/nearby?lat=1&lng=1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"nearby events query failed: timeout"}`, w.Body.String())
	})
}
