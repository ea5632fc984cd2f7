package controllers

import (
	"context"
	"net/http"

	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/service"
	"maintenance-system/pkg/utils"
	appwebsocket "maintenance-system/pkg/websocket"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// TokenAuthenticator checks an access token the same way the Auth middleware does.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*service.JwtCustomClaim, error)
}

type WebSocketController struct {
	hub    *appwebsocket.Hub
	auth   TokenAuthenticator
	logger *zap.Logger
}

func NewWebSocketController(hub *appwebsocket.Hub, auth TokenAuthenticator, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{
		hub:    hub,
		auth:   auth,
		logger: logger,
	}
}

// ServeWs upgrades the connection. Browsers cannot set headers on a
// websocket handshake, so the access token travels in ?token=.
func (c *WebSocketController) ServeWs(ctx echo.Context) error {
	tokenString := ctx.QueryParam("token")
	if tokenString == "" {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	claims, err := c.auth.Authenticate(ctx.Request().Context(), tokenString)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", zap.Error(err))
		return nil
	}

	client := appwebsocket.NewClient(c.hub, conn, claims.UserID)
	if err := c.hub.Register(client); err != nil {
		c.logger.Warn("websocket hub rejected client", zap.Error(err))
		_ = conn.Close()
		return nil
	}

	client.Serve()

	c.logger.Info("websocket client connected", zap.Uint64("userID", claims.UserID))
	return nil
}
