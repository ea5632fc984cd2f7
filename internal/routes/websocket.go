package routes

import (
	"maintenance-system/internal/controllers"
	"maintenance-system/pkg/middleware"
	"maintenance-system/pkg/websocket"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// The handshake authenticates through ?token=, so the route sits outside the secure group.
func runWebSocketRouter(api *echo.Group, hub *websocket.Hub, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	ctrl := controllers.NewWebSocketController(hub, authMW, logger)
	api.GET("/ws", ctrl.ServeWs)
}
