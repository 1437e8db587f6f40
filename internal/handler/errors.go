package handler

import (
	"errors"
	"net/http"
	"strings"

	apperrors "go-gin-event-booking/pkg/app_errors"
	"go-gin-event-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	notFoundErrors = []error{
		apperrors.ErrEventNotFound,
		apperrors.ErrBookingNotFound,
		apperrors.ErrTicketTypeNotFound,
		apperrors.ErrOrganizerNotFound,
		apperrors.ErrCategoryNotFound,
	}
	conflictErrors = []error{
		apperrors.ErrInsufficientStock,
		apperrors.ErrInvalidBookingStatus,
		apperrors.ErrInvalidEventStatus,
		apperrors.ErrOrganizerExists,
		apperrors.ErrSlugTaken,
	}
)

func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var verr *apperrors.ValidationError
	var upstream *apperrors.UpstreamError
	switch {
	case errors.As(err, &verr):
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": verr.Fields,
		})
	case errors.Is(err, apperrors.ErrUnauthorized):
		log.Warn("Unauthorized")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		log.Warn("Forbidden")
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrInvalidSignature):
		log.Warn("Invalid webhook payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidSignature.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		log.Warn("Not found")
		c.JSON(http.StatusNotFound, gin.H{"error": matchMessage(err, notFoundErrors, "Not found")})
	case matches(err, conflictErrors):
		log.Warn("Conflict")
		c.JSON(http.StatusConflict, gin.H{"error": matchMessage(err, conflictErrors, "Conflict")})
	case errors.As(err, &upstream):
		log.Error("Upstream failure", zap.String("service", upstream.Service))
		c.JSON(http.StatusInternalServerError, gin.H{"error": upstream.Error()})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func matches(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// matchMessage returns the capitalized message of the first sentinel err wraps.
func matchMessage(err error, targets []error, fallback string) string {
	for _, target := range targets {
		if errors.Is(err, target) {
			msg := target.Error()
			return strings.ToUpper(msg[:1]) + msg[1:]
		}
	}
	return fallback
}
