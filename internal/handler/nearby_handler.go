package handler

import (
	"net/http"

	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type NearbyHandler struct {
	service service.NearbyService
}

func NewNearbyHandler(service service.NearbyService) *NearbyHandler {
	return &NearbyHandler{service: service}
}

func (h *NearbyHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events/nearby", h.Search)
	}
}

func (h *NearbyHandler) Search(c *gin.Context) {
	var q model.NearbyQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}

	result, err := h.service.Search(c, q)
	if err != nil {
		handleError(c, err, "NearbySearch")
		return
	}
	c.JSON(http.StatusOK, result)
}
