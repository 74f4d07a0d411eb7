package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kwadjo-mensah/shopledger-backend/internal/config"
	"github.com/kwadjo-mensah/shopledger-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGenerateTokenCarriesIdentityClaims(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	svc := NewAuthService(nil, cfg)

	businessID := uint(42)
	user := &models.User{
		ID:         uuid.New(),
		Role:       models.RoleManager,
		BusinessID: &businessID,
	}

	signed, err := svc.GenerateToken(user)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, "manager", claims["role"])
	assert.Equal(t, float64(42), claims["business_id"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), int64(exp), 5)
}

func TestGenerateTokenPlatformAdminHasNoBusinessClaim(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	svc := NewAuthService(nil, cfg)

	user := &models.User{ID: uuid.New(), Role: models.RolePlatformAdmin}
	signed, err := svc.GenerateToken(user)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	_, present := claims["business_id"]
	assert.False(t, present)
}

func TestDupEmailErrMapsUniqueViolation(t *testing.T) {
	// The insert error arrives wrapped from the transaction closure; the
	// sentinel must survive the wrap so handlers can answer 409 instead
	// of 500 when two registrations race past the pre-read check.
	wrapped := fmt.Errorf("create owner: %w", gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, dupEmailErr(wrapped), ErrEmailTaken)

	assert.ErrorIs(t, dupEmailErr(gorm.ErrDuplicatedKey), ErrEmailTaken)

	other := errors.New("connection reset")
	assert.Equal(t, other, dupEmailErr(other))
	assert.NoError(t, dupEmailErr(nil))
}

func TestHashTokenIsDeterministicAndOpaque(t *testing.T) {
	h1 := hashToken("some-reset-token")
	h2 := hashToken("some-reset-token")
	h3 := hashToken("other-token")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64)
	assert.NotContains(t, h1, "some-reset-token")
}
