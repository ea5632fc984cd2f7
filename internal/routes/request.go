package routes

import (
	"maintenance-system/internal/controllers"
	"maintenance-system/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runRequestRouter(secureGroup *echo.Group, requestService services.RequestServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewRequestController(requestService, logger)

	requests := secureGroup.Group("/requests")
	requests.GET("", ctrl.GetRequests)
	requests.POST("", ctrl.CreateRequest)
	requests.GET("/new", ctrl.NewRequestForm)
	requests.GET("/:id", ctrl.GetRequest)
	requests.GET("/:id/form", ctrl.GetRequestForm)
	requests.PUT("/:id", ctrl.SaveRequest)
	requests.PATCH("/:id", ctrl.PatchRequest)
	requests.PATCH("/:id/stage", ctrl.UpdateStage)
}
