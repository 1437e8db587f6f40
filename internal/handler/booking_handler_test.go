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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupBookingTestRouter(mockService *mocks.MockBookingService, auth gin.HandlerFunc) *gin.Engine {
	router := newTestRouter()
	handler.NewBookingHandler(mockService).RegisterRoutes(router, auth)
	return router
}

func TestCreateBooking(t *testing.T) {
	userID := uuid.New()
	eventID := uuid.New()
	request := map[string]interface{}{
		"event_id": eventID,
		"tickets": []map[string]interface{}{
			{"ticket_type_id": uuid.New(), "quantity": 2, "price": 1},
		},
		"attendees": []map[string]interface{}{
			{"name": "Ada", "email": "ada@example.com"},
		},
	}

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockBookingService(t)
		router := setupBookingTestRouter(mockService, fakeAuth(userID))

		bookingID := uuid.New()
		mockService.EXPECT().Create(mock.Anything, userID, mock.MatchedBy(func(req model.CreateBookingRequest) bool {
			return req.EventID == eventID && len(req.Tickets) == 1 && req.Tickets[0].Quantity == 2
		})).Return(&model.Booking{
			ID:         bookingID,
			EventID:    eventID,
			UserID:     userID,
			Status:     model.BookingStatusPending,
			TotalPrice: decimal.NewFromInt(200),
		}, nil).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/bookings", request)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"`+bookingID.String()+`"`)
		assert.Contains(t, w.Body.String(), `"total_price":"200"`)
		assert.Contains(t, w.Body.String(), `"status":"pending"`)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		mockService := mocks.NewMockBookingService(t)
		router := setupBookingTestRouter(mockService, denyAuth())

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/bookings", request)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("Missing event id", func(t *testing.T) {
		mockService := mocks.NewMockBookingService(t)
		router := setupBookingTestRouter(mockService, fakeAuth(userID))

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/bookings", map[string]interface{}{"tickets": []interface{}{}})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(w.Body)
		assert.Equal(t, "Validation failed", body.Error)
		if assert.Len(t, body.Details, 1) {
			assert.Equal(t, "event_id", body.Details[0].Field)
		}
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("Binding error", func(t *testing.T) {
		mockService := mocks.NewMockBookingService(t)
		router := setupBookingTestRouter(mockService, fakeAuth(userID))

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/bookings", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid request format"}`, w.Body.String())
	})

	t.Run("Insufficient stock", func(t *testing.T) {
		mockService := mocks.NewMockBookingService(t)
		router := setupBookingTestRouter(mockService, fakeAuth(userID))

		mockService.EXPECT().Create(mock.Anything, userID, mock.Anything).Return(nil, apperrors.ErrInsufficientStock).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/bookings", request)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"Insufficient stock"}`, w.Body.String())
	})

	t.Run("Event not found", func(t *testing.T) {
		mockService := mocks.NewMockBookingService(t)
		router := setupBookingTestRouter(mockService, fakeAuth(userID))

		mockService.EXPECT().Create(mock.Anything, userID, mock.Anything).Return(nil, apperrors.ErrEventNotFound).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/bookings", request)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Event not found"}`, w.Body.String())
	})

	t.Run("Unexpected error", func(t *testing.T) {
		mockService := mocks.NewMockBookingService(t)
		router := setupBookingTestRouter(mockService, fakeAuth(userID))

		mockService.EXPECT().Create(mock.Anything, userID, mock.Anything).Return(nil, apperrors.ErrInternalServerError).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/bookings", request)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	})
}

func TestGetBooking(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockBookingService(t)
		router := setupBookingTestRouter(mockService, fakeAuth(userID))
		id := uuid.New()

		mockService.EXPECT().GetByID(mock.Anything, userID, id).Return(&model.Booking{ID: id, UserID: userID}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/bookings/"+id.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		mockService := mocks.NewMockBookingService(t)
		router := setupBookingTestRouter(mockService, fakeAuth(userID))

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/bookings/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid booking id"}`, w.Body.String())
	})
}

func TestCancelBooking(t *testing.T) {
	userID := uuid.New()

	t.Run("Not pending", func(t *testing.T) {
		mockService := mocks.NewMockBookingService(t)
		router := setupBookingTestRouter(mockService, fakeAuth(userID))
		id := uuid.New()

		mockService.EXPECT().Cancel(mock.Anything, userID, id).Return(nil, apperrors.ErrInvalidBookingStatus).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/v1/bookings/"+id.String()+"/cancel", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"Invalid booking status"}`, w.Body.String())
	})

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockBookingService(t)
		router := setupBookingTestRouter(mockService, fakeAuth(userID))
		id := uuid.New()

		mockService.EXPECT().Cancel(mock.Anything, userID, id).
			Return(&model.Booking{ID: id, Status: model.BookingStatusCancelled}, nil).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/v1/bookings/"+id.String()+"/cancel", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"cancelled"`)
	})
}
