package handler

import (
	"net/http"

	"go-gin-event-booking/internal/middleware"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	signatureHeader = "Stripe-Signature"
	maxWebhookBody  = int64(65536)
)

type PaymentHandler struct {
	service service.PaymentService
}

func NewPaymentHandler(service service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	router := r.Group("/api/v1")
	{
		router.POST("payments/checkout-session", requireAuth, h.CreateCheckoutSession)
		// the gateway signs webhooks; there is no bearer token
		router.POST("webhooks/payment", h.Webhook)
	}
}

func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req model.CreateCheckoutSessionRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	session, err := h.service.CreateCheckoutSession(c, middleware.UserIDFromContext(c), req)
	if err != nil {
		handleError(c, err, "CreateCheckoutSession")
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *PaymentHandler) Webhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.service.HandleWebhook(c, payload, c.GetHeader(signatureHeader)); err != nil {
		handleError(c, err, "PaymentWebhook")
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
