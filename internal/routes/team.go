package routes

import (
	"maintenance-system/internal/controllers"
	"maintenance-system/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runTeamRouter(secureGroup *echo.Group, teamService services.TeamServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewTeamController(teamService, logger)

	secureGroup.GET("/teams", ctrl.GetTeams)
	secureGroup.GET("/teams/:id", ctrl.GetTeam)
	secureGroup.POST("/teams", ctrl.CreateTeam)
	secureGroup.PUT("/teams/:id", ctrl.UpdateTeam)
}
