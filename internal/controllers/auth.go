package controllers

import (
	"net/http"
	"time"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/services"
	"maintenance-system/pkg/contextkeys"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/middleware"
	"maintenance-system/pkg/service"
	"maintenance-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const refreshTokenCookie = "refreshToken"

type AuthController struct {
	authService services.AuthServiceInterface
	jwtSvc      service.JWTService
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		jwtSvc:      jwtSvc,
		logger:      logger,
	}
}

func (ctrl *AuthController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *AuthController) Signup(c echo.Context) error {
	var payload dto.SignupDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Warn("Signup: bind failed", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid signup payload"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	user, err := ctrl.authService.Signup(c.Request().Context(), payload)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.FromError(err, "could not register account"))
	}

	return utils.SuccessResponse(c, services.UserToPublicDTO(user), "account created", http.StatusCreated)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Warn("Login: bind failed", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid login payload"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	user, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.FromError(err, "could not log in"))
	}

	return ctrl.generateTokensAndRespond(c, user, "logged in")
}

// Logout revokes the access token from the Authorization header and,
// when the cookie still holds a valid one, the refresh token too.
func (ctrl *AuthController) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	claims, err := middleware.ClaimsFromCtx(ctx)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}
	if err := ctrl.authService.Logout(ctx, claims); err != nil {
		return ctrl.errorResponse(c, apperrors.FromError(err, "could not log out"))
	}

	if cookie, err := c.Cookie(refreshTokenCookie); err == nil && cookie.Value != "" {
		if refreshClaims, err := ctrl.jwtSvc.ValidateToken(cookie.Value); err == nil && refreshClaims.IsRefreshToken {
			if err := ctrl.authService.Logout(ctx, refreshClaims); err != nil {
				ctrl.logger.Warn("Logout: refresh token not revoked", zap.Error(err))
			}
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     refreshTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	return utils.SuccessResponse(c, nil, "logged out", http.StatusOK)
}

func (ctrl *AuthController) RefreshToken(c echo.Context) error {
	ctx := c.Request().Context()

	cookie, err := c.Cookie(refreshTokenCookie)
	if err != nil || cookie.Value == "" {
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}

	claims, err := ctrl.jwtSvc.ValidateToken(cookie.Value)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	if !claims.IsRefreshToken {
		return ctrl.errorResponse(c, apperrors.ErrTokenIsNotRefresh)
	}

	revoked, err := ctrl.authService.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		ctrl.logger.Error("RefreshToken: revocation lookup failed", zap.Error(err))
		return ctrl.errorResponse(c, err)
	}
	if revoked {
		return ctrl.errorResponse(c, apperrors.ErrTokenRevoked)
	}

	user, err := ctrl.authService.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.FromError(err, "could not refresh tokens"))
	}

	return ctrl.generateTokensAndRespond(c, user, "tokens refreshed")
}

func (ctrl *AuthController) Me(c echo.Context) error {
	userID, ok := c.Request().Context().Value(contextkeys.UserIDKey).(uint64)
	if !ok || userID == 0 {
		ctrl.logger.Error("Me: no user id in context")
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}

	user, err := ctrl.authService.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.FromError(err, "could not load profile"))
	}

	return utils.SuccessResponse(c, services.UserToPublicDTO(user), "profile loaded", http.StatusOK)
}

func (ctrl *AuthController) generateTokensAndRespond(c echo.Context, user *entities.PortalUser, message string) error {
	accessToken, refreshToken, err := ctrl.jwtSvc.GenerateTokens(user.ID)
	if err != nil {
		ctrl.logger.Error("failed to generate tokens", zap.Error(err), zap.Uint64("userID", user.ID))
		return ctrl.errorResponse(c, err)
	}

	cookie := new(http.Cookie)
	cookie.Name = refreshTokenCookie
	cookie.Value = refreshToken
	cookie.Path = "/"
	cookie.HttpOnly = true
	cookie.Secure = true
	cookie.SameSite = http.SameSiteNoneMode
	cookie.Expires = time.Now().Add(ctrl.jwtSvc.GetRefreshTokenTTL())
	c.SetCookie(cookie)

	response := dto.AuthResponseDTO{
		AccessToken: accessToken,
		User:        services.UserToPublicDTO(user),
	}
	return utils.SuccessResponse(c, response, message, http.StatusOK)
}
