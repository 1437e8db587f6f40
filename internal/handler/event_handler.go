package handler

import (
	"net/http"

	"go-gin-event-booking/internal/middleware"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	router := r.Group("/api/v1")
	{
		router.GET("events", h.List)
		router.GET("events/:slug", h.GetBySlug)
	}
	organizer := r.Group("/api/v1", requireAuth)
	{
		organizer.POST("events", h.Create)
		organizer.PUT("events/:id", h.Update)
		organizer.POST("events/:id/publish", h.Publish)
		organizer.POST("events/:id/cancel", h.Cancel)
		organizer.POST("events/:id/ticket-types", h.AddTicketType)
	}
}

func (h *EventHandler) List(c *gin.Context) {
	var q model.EventListQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}
	events, err := h.service.List(c, q)
	if err != nil {
		handleError(c, err, "ListEvents")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"page":   q.Page,
		"limit":  q.Limit,
	})
}

func (h *EventHandler) GetBySlug(c *gin.Context) {
	event, err := h.service.GetBySlug(c, c.Param("slug"))
	if err != nil {
		handleError(c, err, "GetEventBySlug")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req model.CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, middleware.UserIDFromContext(c), req)
	if err != nil {
		handleError(c, err, "CreateEvent")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) Update(c *gin.Context) {
	eventID, ok := uuidParam(c, "id", "event")
	if !ok {
		return
	}
	var req model.UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	updated, err := h.service.Update(c, middleware.UserIDFromContext(c), eventID, req)
	if err != nil {
		handleError(c, err, "UpdateEvent")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) Publish(c *gin.Context) {
	eventID, ok := uuidParam(c, "id", "event")
	if !ok {
		return
	}
	event, err := h.service.Publish(c, middleware.UserIDFromContext(c), eventID)
	if err != nil {
		handleError(c, err, "PublishEvent")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Cancel(c *gin.Context) {
	eventID, ok := uuidParam(c, "id", "event")
	if !ok {
		return
	}
	event, err := h.service.Cancel(c, middleware.UserIDFromContext(c), eventID)
	if err != nil {
		handleError(c, err, "CancelEvent")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) AddTicketType(c *gin.Context) {
	eventID, ok := uuidParam(c, "id", "event")
	if !ok {
		return
	}
	var req model.CreateTicketTypeRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	ticketType, err := h.service.AddTicketType(c, middleware.UserIDFromContext(c), eventID, req)
	if err != nil {
		handleError(c, err, "AddTicketType")
		return
	}
	c.JSON(http.StatusCreated, ticketType)
}
