package routes

import (
	"net/http"

	"maintenance-system/internal/repositories"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/middleware"
	"maintenance-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type healthDTO struct {
	Storage string `json:"storage"`
	Keys    int    `json:"keys"`
}

func runSystemRouter(e *echo.Echo, api *echo.Group, storage repositories.StorageInterface, metrics *middleware.HTTPMetrics, logger *zap.Logger) {
	if metrics != nil {
		e.GET("/metrics", metrics.Handler())
	}

	api.GET("/health", func(c echo.Context) error {
		keys, err := storage.Keys(c.Request().Context())
		if err != nil {
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusServiceUnavailable, "storage unavailable", err, nil), logger)
		}
		return utils.SuccessResponse(c, healthDTO{Storage: "ok", Keys: len(keys)}, "healthy", http.StatusOK)
	})
}
