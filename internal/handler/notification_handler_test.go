package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-gin-event-booking/internal/handler"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/service/mocks"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSendBookingConfirmation(t *testing.T) {
	userID := uuid.New()
	bookingID := uuid.New()
	request := map[string]interface{}{
		"booking_id":   bookingID,
		"user_email":   "ada@example.com",
		"event_name":   "Jazz in the Park",
		"event_date":   "2026-08-01",
		"total_amount": 100,
	}

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockNotificationService(t)
		router := newTestRouter()
		handler.NewNotificationHandler(mockService).RegisterRoutes(router, fakeAuth(userID))

		mockService.EXPECT().SendConfirmation(mock.Anything, userID, mock.MatchedBy(func(req model.SendConfirmationRequest) bool {
			return req.BookingID == bookingID && req.UserEmail == "ada@example.com" && req.TotalAmount.IntPart() == 100
		})).Return(nil).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/notifications/booking-confirmation", request)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})

	t.Run("Missing fields", func(t *testing.T) {
		mockService := mocks.NewMockNotificationService(t)
		router := newTestRouter()
		handler.NewNotificationHandler(mockService).RegisterRoutes(router, fakeAuth(userID))

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/notifications/booking-confirmation", map[string]interface{}{
			"booking_id": bookingID,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(w.Body)
		fields := []string{}
		for _, d := range body.Details {
			fields = append(fields, d.Field)
		}
		assert.Equal(t, []string{"user_email", "event_name", "event_date"}, fields)
	})

	t.Run("Provider failure", func(t *testing.T) {
		mockService := mocks.NewMockNotificationService(t)
		router := newTestRouter()
		handler.NewNotificationHandler(mockService).RegisterRoutes(router, fakeAuth(userID))

		mockService.EXPECT().SendConfirmation(mock.Anything, userID, mock.Anything).
			Return(apperrors.NewUpstreamError("email", errors.New("failed to send confirmation email: 550"))).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/notifications/booking-confirmation", request)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"failed to send confirmation email: 550"}`, w.Body.String())
	})

	t.Run("Booking not confirmed", func(t *testing.T) {
		mockService := mocks.NewMockNotificationService(t)
		router := newTestRouter()
		handler.NewNotificationHandler(mockService).RegisterRoutes(router, fakeAuth(userID))

		mockService.EXPECT().SendConfirmation(mock.Anything, userID, mock.Anything).
			Return(apperrors.ErrInvalidBookingStatus).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/notifications/booking-confirmation", request)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
