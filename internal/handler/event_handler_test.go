package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-gin-event-booking/internal/handler"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/service/mocks"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupEventTestRouter(mockService *mocks.MockEventService, auth gin.HandlerFunc) *gin.Engine {
	router := newTestRouter()
	handler.NewEventHandler(mockService).RegisterRoutes(router, auth)
	return router
}

func TestListEvents(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, denyAuth())

		mockService.EXPECT().List(mock.Anything, model.EventListQuery{Category: "music", Page: 1, Limit: 20}).
			Return([]*model.Event{{ID: uuid.New(), Title: "Jazz"}}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/events?category=music", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Jazz"`)
	})

	t.Run("Limit out of range", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, denyAuth())

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/events?limit=500", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(w.Body)
		if assert.Len(t, body.Details, 1) {
			assert.Equal(t, "limit", body.Details[0].Field)
			assert.Equal(t, "limit must be at most 100", body.Details[0].Message)
		}
	})
}

func TestGetEventBySlug(t *testing.T) {
	t.Run("Not found", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, denyAuth())

		mockService.EXPECT().GetBySlug(mock.Anything, "missing").Return(nil, apperrors.ErrEventNotFound).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/events/missing", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Event not found"}`, w.Body.String())
	})
}

func TestCreateEvent(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, fakeAuth(userID))

		mockService.EXPECT().Create(mock.Anything, userID, mock.MatchedBy(func(req model.CreateEventRequest) bool {
			return req.Title == "Jazz" && req.StartDate == "2026-08-01"
		})).Return(&model.Event{ID: uuid.New(), Slug: "jazz", Status: model.EventStatusDraft}, nil).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/events", map[string]interface{}{
			"title":      "Jazz",
			"start_date": "2026-08-01",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"slug":"jazz"`)
	})

	t.Run("Bad date format", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, fakeAuth(userID))

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/events", map[string]interface{}{
			"title":      "Jazz",
			"start_date": "01/08/2026",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(w.Body)
		if assert.Len(t, body.Details, 1) {
			assert.Equal(t, "start_date", body.Details[0].Field)
		}
	})

	t.Run("Not an organizer", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, fakeAuth(userID))

		mockService.EXPECT().Create(mock.Anything, userID, mock.Anything).Return(nil, apperrors.ErrForbidden).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/events", map[string]interface{}{
			"title":      "Jazz",
			"start_date": "2026-08-01",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestEventTransitions(t *testing.T) {
	userID := uuid.New()
	eventID := uuid.New()

	t.Run("Publish", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, fakeAuth(userID))

		mockService.EXPECT().Publish(mock.Anything, userID, eventID).
			Return(&model.Event{ID: eventID, Status: model.EventStatusPublished}, nil).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/v1/events/"+eventID.String()+"/publish", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"published"`)
	})

	t.Run("Cancel twice", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, fakeAuth(userID))

		mockService.EXPECT().Cancel(mock.Anything, userID, eventID).Return(nil, apperrors.ErrInvalidEventStatus).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/v1/events/"+eventID.String()+"/cancel", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, fakeAuth(userID))

		req, _ := http.NewRequest(http.MethodPost, "/api/v1/events/abc/publish", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid event id"}`, w.Body.String())
	})
}

func TestAddTicketType(t *testing.T) {
	userID := uuid.New()
	eventID := uuid.New()
	mockService := mocks.NewMockEventService(t)
	router := setupEventTestRouter(mockService, fakeAuth(userID))

	mockService.EXPECT().AddTicketType(mock.Anything, userID, eventID, mock.MatchedBy(func(req model.CreateTicketTypeRequest) bool {
		return req.Name == "VIP" && req.QuantityAvailable == 50 && req.Price.IntPart() == 100
	})).Return(&model.TicketType{ID: uuid.New(), EventID: eventID, Name: "VIP"}, nil).Once()

	req := createJSONHTTPRequest(http.MethodPost, "/api/v1/events/"+eventID.String()+"/ticket-types", map[string]interface{}{
		"name":               "VIP",
		"price":              "100.00",
		"quantity_available": 50,
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
