package handler

import (
	"net/http"

	"go-gin-event-booking/internal/middleware"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service service.BookingService
}

func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	router := r.Group("/api/v1", requireAuth)
	{
		router.POST("bookings", h.Create)
		router.GET("bookings", h.ListMine)
		router.GET("bookings/:id", h.GetByID)
		router.POST("bookings/:id/cancel", h.Cancel)
	}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	booking, err := h.service.Create(c, middleware.UserIDFromContext(c), req)
	if err != nil {
		handleError(c, err, "CreateBooking")
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	bookings, err := h.service.ListMine(c, middleware.UserIDFromContext(c))
	if err != nil {
		handleError(c, err, "ListBookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id", "booking")
	if !ok {
		return
	}
	booking, err := h.service.GetByID(c, middleware.UserIDFromContext(c), id)
	if err != nil {
		handleError(c, err, "GetBooking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := uuidParam(c, "id", "booking")
	if !ok {
		return
	}
	booking, err := h.service.Cancel(c, middleware.UserIDFromContext(c), id)
	if err != nil {
		handleError(c, err, "CancelBooking")
		return
	}
	c.JSON(http.StatusOK, booking)
}
