package handler_test

import (
	"bytes"
	"errors"
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

func setupPaymentTestRouter(mockService *mocks.MockPaymentService, auth gin.HandlerFunc) *gin.Engine {
	router := newTestRouter()
	handler.NewPaymentHandler(mockService).RegisterRoutes(router, auth)
	return router
}

func TestCreateCheckoutSession(t *testing.T) {
	userID := uuid.New()
	bookingID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockPaymentService(t)
		router := setupPaymentTestRouter(mockService, fakeAuth(userID))

		mockService.EXPECT().CreateCheckoutSession(mock.Anything, userID, model.CreateCheckoutSessionRequest{BookingID: bookingID}).
			Return(&model.CheckoutSessionResponse{CheckoutURL: "https://checkout.example/cs_1", SessionID: "cs_1"}, nil).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/payments/checkout-session", map[string]interface{}{"booking_id": bookingID})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"checkout_url":"https://checkout.example/cs_1","session_id":"cs_1"}`, w.Body.String())
	})

	t.Run("Gateway message is passed through", func(t *testing.T) {
		mockService := mocks.NewMockPaymentService(t)
		router := setupPaymentTestRouter(mockService, fakeAuth(userID))

		mockService.EXPECT().CreateCheckoutSession(mock.Anything, userID, mock.Anything).
			Return(nil, apperrors.NewUpstreamError("payment", errors.New("No such price"))).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/payments/checkout-session", map[string]interface{}{"booking_id": bookingID})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"No such price"}`, w.Body.String())
	})

	t.Run("Invalid email", func(t *testing.T) {
		mockService := mocks.NewMockPaymentService(t)
		router := setupPaymentTestRouter(mockService, fakeAuth(userID))

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/payments/checkout-session", map[string]interface{}{
			"booking_id":     bookingID,
			"customer_email": "nope",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(w.Body)
		if assert.Len(t, body.Details, 1) {
			assert.Equal(t, "customer_email", body.Details[0].Field)
			assert.Equal(t, "customer_email must be a valid email", body.Details[0].Message)
		}
	})
}

func TestPaymentWebhook(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)

	t.Run("Accepted", func(t *testing.T) {
		mockService := mocks.NewMockPaymentService(t)
		router := setupPaymentTestRouter(mockService, denyAuth())

		mockService.EXPECT().HandleWebhook(mock.Anything, payload, "t=1,v1=sig").Return(nil).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/v1/webhooks/payment", bytes.NewReader(payload))
		req.Header.Set("Stripe-Signature", "t=1,v1=sig")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"received":true}`, w.Body.String())
	})

	t.Run("Bad signature gets a generic answer", func(t *testing.T) {
		mockService := mocks.NewMockPaymentService(t)
		router := setupPaymentTestRouter(mockService, denyAuth())

		mockService.EXPECT().HandleWebhook(mock.Anything, payload, "forged").Return(apperrors.ErrInvalidSignature).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/v1/webhooks/payment", bytes.NewReader(payload))
		req.Header.Set("Stripe-Signature", "forged")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid webhook payload"}`, w.Body.String())
	})

	t.Run("Processing failure asks for a retry", func(t *testing.T) {
		mockService := mocks.NewMockPaymentService(t)
		router := setupPaymentTestRouter(mockService, denyAuth())

		mockService.EXPECT().HandleWebhook(mock.Anything, payload, "t=1,v1=sig").Return(errors.New("connection refused")).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/v1/webhooks/payment", bytes.NewReader(payload))
		req.Header.Set("Stripe-Signature", "t=1,v1=sig")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
