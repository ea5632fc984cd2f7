package middleware

import (
	"context"
	"strings"

	"maintenance-system/pkg/contextkeys"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/service"
	"maintenance-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TokenRevocationChecker reports whether an access token id was revoked by logout.
type TokenRevocationChecker interface {
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

type AuthMiddleware struct {
	jwtService service.JWTService
	revocation TokenRevocationChecker
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, revocation TokenRevocationChecker, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		revocation: revocation,
		logger:     logger,
	}
}

// Auth accepts "Authorization: Bearer <access token>" and stores the claims
// and user id in the request context.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("malformed Authorization header")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.Authenticate(c.Request().Context(), parts[1])
		if err != nil {
			return utils.ErrorResponse(c, err, m.logger)
		}

		ctx := context.WithValue(c.Request().Context(), contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.ClaimsKey, claims)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// Authenticate validates a raw access token. It is shared with the websocket
// handshake, where the token arrives as a query parameter.
func (m *AuthMiddleware) Authenticate(ctx context.Context, token string) (*service.JwtCustomClaim, error) {
	claims, err := m.jwtService.ValidateToken(token)
	if err != nil {
		m.logger.Warn("token validation failed", zap.Error(err))
		return nil, err
	}
	if claims.IsRefreshToken {
		m.logger.Warn("refresh token used for access", zap.Uint64("userID", claims.UserID))
		return nil, apperrors.ErrTokenIsRefresh
	}

	revoked, err := m.revocation.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	return claims, nil
}

// ClaimsFromCtx returns the claims stored by Auth.
func ClaimsFromCtx(ctx context.Context) (*service.JwtCustomClaim, error) {
	claims, ok := ctx.Value(contextkeys.ClaimsKey).(*service.JwtCustomClaim)
	if !ok || claims == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return claims, nil
}
