package routes

import (
	"maintenance-system/internal/controllers"
	"maintenance-system/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runMaintenanceRouter(secureGroup *echo.Group, boardService services.BoardServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewBoardController(boardService, logger)

	maintenance := secureGroup.Group("/maintenance")
	maintenance.GET("/board", ctrl.GetBoard)
	maintenance.GET("/calendar", ctrl.GetCalendar)
}
