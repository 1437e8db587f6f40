package handler

import (
	"net/http"

	"go-gin-event-booking/internal/middleware"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	service service.NotificationService
}

func NewNotificationHandler(service service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	router := r.Group("/api/v1", requireAuth)
	{
		router.POST("notifications/booking-confirmation", h.SendBookingConfirmation)
	}
}

func (h *NotificationHandler) SendBookingConfirmation(c *gin.Context) {
	var req model.SendConfirmationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if err := h.service.SendConfirmation(c, middleware.UserIDFromContext(c), req); err != nil {
		handleError(c, err, "SendBookingConfirmation")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
