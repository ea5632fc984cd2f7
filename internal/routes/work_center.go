package routes

import (
	"maintenance-system/internal/controllers"
	"maintenance-system/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runWorkCenterRouter(secureGroup *echo.Group, workCenterService services.WorkCenterServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewWorkCenterController(workCenterService, logger)

	secureGroup.GET("/work-centers", ctrl.GetWorkCenters)
	secureGroup.POST("/work-centers", ctrl.AddWorkCenter)
	secureGroup.GET("/work-centers/new", ctrl.NewWorkCenterForm)
	secureGroup.GET("/work-centers/:id", ctrl.GetWorkCenter)
	secureGroup.PUT("/work-centers/:id", ctrl.SaveWorkCenter)
	secureGroup.PATCH("/work-centers/:id", ctrl.UpdateWorkCenter)
}
