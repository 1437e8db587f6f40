package middleware

import (
	"net/http"
	"strings"

	"go-gin-event-booking/internal/auth"
	"go-gin-event-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// RequireAuth rejects requests without a valid bearer token. The response never says why.
func RequireAuth(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c)
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			logger.WithComponent("handler").Debug("bearer token rejected", zap.Error(err))
			abortUnauthorized(c)
			return
		}
		userID, err := claims.UserID()
		if err != nil || userID == uuid.Nil {
			abortUnauthorized(c)
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(UserEmailKey, claims.Email)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}

// UserIDFromContext returns uuid.Nil when RequireAuth did not run.
func UserIDFromContext(c *gin.Context) uuid.UUID {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil
	}
	id, _ := v.(uuid.UUID)
	return id
}

func UserEmailFromContext(c *gin.Context) string {
	return c.GetString(UserEmailKey)
}
