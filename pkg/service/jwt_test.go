package service

import (
	"testing"
	"time"

	apperrors "maintenance-system/pkg/errors"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestJWT(now time.Time) *jwtService {
	svc := NewJWTService("secret", time.Hour, 48*time.Hour, zap.NewNop()).(*jwtService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestJWT_GenerateAndValidate(t *testing.T) {
	now := time.Now()
	svc := newTestJWT(now)

	access, refresh, err := svc.GenerateTokens(9)
	require.NoError(t, err)

	accessClaims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), accessClaims.UserID)
	assert.False(t, accessClaims.IsRefreshToken)
	assert.NotEmpty(t, accessClaims.ID)
	assert.WithinDuration(t, now.Add(time.Hour), accessClaims.ExpiresAt.Time, time.Second)

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)
	assert.NotEqual(t, accessClaims.ID, refreshClaims.ID)

	assert.Equal(t, time.Hour, svc.GetAccessTokenTTL())
	assert.Equal(t, 48*time.Hour, svc.GetRefreshTokenTTL())
}

func TestJWT_Expired(t *testing.T) {
	svc := newTestJWT(time.Now().Add(-2 * time.Hour))

	access, _, err := svc.GenerateTokens(9)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestJWT_RejectsForeignTokens(t *testing.T) {
	svc := newTestJWT(time.Now())

	other := newTestJWT(time.Now())
	other.secretKey = []byte("other-secret")
	foreign, _, err := other.GenerateTokens(9)
	require.NoError(t, err)
	_, err = svc.ValidateToken(foreign)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &JwtCustomClaim{UserID: 9}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ValidateToken(none)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSigningMethod)

	anonymous, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &JwtCustomClaim{}).SignedString(svc.secretKey)
	require.NoError(t, err)
	_, err = svc.ValidateToken(anonymous)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestJwtCustomClaim_RemainingTTL(t *testing.T) {
	now := time.Date(2025, 12, 18, 9, 0, 0, 0, time.UTC)

	c := &JwtCustomClaim{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(30 * time.Minute))}}
	assert.Equal(t, 30*time.Minute, c.RemainingTTL(now))
	assert.Equal(t, time.Duration(0), (&JwtCustomClaim{}).RemainingTTL(now))
}
