package controllers

import (
	"net/http"

	"maintenance-system/internal/services"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type BoardController struct {
	boardService services.BoardServiceInterface
	logger       *zap.Logger
}

func NewBoardController(service services.BoardServiceInterface, logger *zap.Logger) *BoardController {
	return &BoardController{boardService: service, logger: logger}
}

func (c *BoardController) GetBoard(ctx echo.Context) error {
	res, err := c.boardService.GetBoard(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not load board"), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "board loaded", http.StatusOK)
}

// GetCalendar reads ?month=YYYY-MM and defaults to the current month.
func (c *BoardController) GetCalendar(ctx echo.Context) error {
	res, err := c.boardService.GetCalendar(ctx.Request().Context(), ctx.QueryParam("month"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not load calendar"), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "calendar loaded", http.StatusOK)
}
