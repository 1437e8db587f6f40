package handler

import (
	"net/http"

	"go-gin-event-booking/internal/cache"
	"go-gin-event-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GeoHandler struct {
	locator cache.GeoIPLocator
}

func NewGeoHandler(locator cache.GeoIPLocator) *GeoHandler {
	return &GeoHandler{locator: locator}
}

func (h *GeoHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("geo/locate", h.Locate)
	}
}

// Locate is advisory: any failure answers with a null location.
func (h *GeoHandler) Locate(c *gin.Context) {
	ip := c.ClientIP()
	location, err := h.locator.Locate(c, ip)
	if err != nil {
		logger.WithComponent("geoip").Debug("ip lookup failed", zap.String("ip", ip), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"location": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": location})
}
