package controllers

import (
	"net/http"

	"maintenance-system/internal/services"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(ds services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: ds,
		logger:           logger,
	}
}

// GetDashboard accepts the same search, filter and sort params as the request list.
func (ctrl *DashboardController) GetDashboard(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.Request().URL.Query())

	res, total, err := ctrl.dashboardService.GetDashboard(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, apperrors.FromError(err, "could not load dashboard"), ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "dashboard loaded", http.StatusOK, total)
}
