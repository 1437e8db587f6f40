package handler

import (
	"net/http"

	"go-gin-event-booking/internal/middleware"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type OrganizerHandler struct {
	service      service.OrganizerService
	eventService service.EventService
}

func NewOrganizerHandler(service service.OrganizerService, eventService service.EventService) *OrganizerHandler {
	return &OrganizerHandler{service: service, eventService: eventService}
}

func (h *OrganizerHandler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	router := r.Group("/api/v1")
	{
		router.GET("organizers/:id", h.GetByID)
	}
	me := r.Group("/api/v1", requireAuth)
	{
		me.POST("organizers", h.Register)
		me.GET("organizers/me", h.GetMine)
		me.PUT("organizers/me", h.UpdateMine)
		me.GET("organizers/me/events", h.ListMyEvents)
		me.GET("organizers/me/dashboard", h.Dashboard)
	}
}

func (h *OrganizerHandler) Register(c *gin.Context) {
	var req model.RegisterOrganizerRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	organizer, err := h.service.Register(c, middleware.UserIDFromContext(c), req)
	if err != nil {
		handleError(c, err, "RegisterOrganizer")
		return
	}
	c.JSON(http.StatusCreated, organizer)
}

func (h *OrganizerHandler) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id", "organizer")
	if !ok {
		return
	}
	organizer, err := h.service.GetByID(c, id)
	if err != nil {
		handleError(c, err, "GetOrganizer")
		return
	}
	c.JSON(http.StatusOK, organizer)
}

func (h *OrganizerHandler) GetMine(c *gin.Context) {
	organizer, err := h.service.GetMine(c, middleware.UserIDFromContext(c))
	if err != nil {
		handleError(c, err, "GetMyOrganizer")
		return
	}
	c.JSON(http.StatusOK, organizer)
}

func (h *OrganizerHandler) UpdateMine(c *gin.Context) {
	var params model.UpdateOrganizerParams
	if err := BindJson(c, &params); err != nil {
		return
	}
	organizer, err := h.service.UpdateMine(c, middleware.UserIDFromContext(c), params)
	if err != nil {
		handleError(c, err, "UpdateMyOrganizer")
		return
	}
	c.JSON(http.StatusOK, organizer)
}

func (h *OrganizerHandler) ListMyEvents(c *gin.Context) {
	events, err := h.eventService.ListMine(c, middleware.UserIDFromContext(c))
	if err != nil {
		handleError(c, err, "ListMyEvents")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *OrganizerHandler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c, middleware.UserIDFromContext(c))
	if err != nil {
		handleError(c, err, "OrganizerDashboard")
		return
	}
	c.JSON(http.StatusOK, stats)
}
