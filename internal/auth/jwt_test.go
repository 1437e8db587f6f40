package auth_test

import (
	"testing"
	"time"

	"go-gin-event-booking/config"
	"go-gin-event-booking/internal/auth"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTVerifier_Verify(t *testing.T) {
	cfg := config.LoadTestConfig().Auth
	verifier := auth.NewJWTVerifier(cfg)
	userID := uuid.New()

	t.Run("Valid token", func(t *testing.T) {
		token, err := auth.IssueToken(cfg.JWTSecret, cfg.Audience, userID, "ada@example.com", time.Hour)
		require.NoError(t, err)

		claims, err := verifier.Verify(token)

		require.NoError(t, err)
		id, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, userID, id)
		assert.Equal(t, "ada@example.com", claims.Email)
	})

	t.Run("Empty token", func(t *testing.T) {
		_, err := verifier.Verify("")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, err := auth.IssueToken("other-secret", cfg.Audience, userID, "", time.Hour)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Expired token", func(t *testing.T) {
		token, err := auth.IssueToken(cfg.JWTSecret, cfg.Audience, userID, "", -time.Minute)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Wrong audience", func(t *testing.T) {
		token, err := auth.IssueToken(cfg.JWTSecret, "service_role", userID, "", time.Hour)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Subject is not a uuid", func(t *testing.T) {
		claims := auth.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "not-a-uuid",
				Audience:  jwt.ClaimStrings{cfg.Audience},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Other signing method", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}
