package controllers

import (
	"net/http"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/services"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type RequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewRequestController(service services.RequestServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{requestService: service, logger: logger}
}

func (c *RequestController) GetRequests(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.requestService.GetRequests(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not load requests"), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "requests loaded", http.StatusOK, total)
}

func (c *RequestController) GetRequest(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.GetRequest(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not load request"), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "request loaded", http.StatusOK)
}

// NewRequestForm returns the blank form for /requests/new.
func (c *RequestController) NewRequestForm(ctx echo.Context) error {
	res, err := c.requestService.NewRequestForm(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not build request form"), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "blank request form", http.StatusOK)
}

func (c *RequestController) GetRequestForm(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.GetRequestForm(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not load request form"), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "request form loaded", http.StatusOK)
}

func (c *RequestController) CreateRequest(ctx echo.Context) error {
	var form dto.RequestFormDTO
	if err := ctx.Bind(&form); err != nil {
		return utils.ErrorResponse(ctx, bindError(err), c.logger)
	}
	if err := ctx.Validate(&form); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.CreateRequest(ctx.Request().Context(), form)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not create request"), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "request created", http.StatusCreated)
}

func (c *RequestController) SaveRequest(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var form dto.RequestFormDTO
	if err := ctx.Bind(&form); err != nil {
		return utils.ErrorResponse(ctx, bindError(err), c.logger)
	}
	if err := ctx.Validate(&form); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.SaveRequest(ctx.Request().Context(), id, form)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not save request"), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "request saved", http.StatusOK)
}

func (c *RequestController) PatchRequest(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, bindError(err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.PatchRequest(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not update request"), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "request updated", http.StatusOK)
}

// UpdateStage backs the kanban drag and drop.
func (c *RequestController) UpdateStage(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateStageDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, bindError(err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.UpdateRequestStage(ctx.Request().Context(), id, payload.Stage)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not change stage"), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "stage updated", http.StatusOK)
}
