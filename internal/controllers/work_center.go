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

type WorkCenterController struct {
	workCenterService services.WorkCenterServiceInterface
	logger            *zap.Logger
}

func NewWorkCenterController(service services.WorkCenterServiceInterface, logger *zap.Logger) *WorkCenterController {
	return &WorkCenterController{workCenterService: service, logger: logger}
}

func (c *WorkCenterController) GetWorkCenters(ctx echo.Context) error {
	res, err := c.workCenterService.GetWorkCenters(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not load work centers"), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "work centers loaded", http.StatusOK)
}

func (c *WorkCenterController) GetWorkCenter(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.workCenterService.GetWorkCenter(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not load work center"), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "work center loaded", http.StatusOK)
}

func (c *WorkCenterController) NewWorkCenterForm(ctx echo.Context) error {
	res, err := c.workCenterService.NewWorkCenterForm(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not build work center form"), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "blank work center form", http.StatusOK)
}

func (c *WorkCenterController) AddWorkCenter(ctx echo.Context) error {
	var form dto.WorkCenterFormDTO
	if err := ctx.Bind(&form); err != nil {
		return utils.ErrorResponse(ctx, bindError(err), c.logger)
	}
	if err := ctx.Validate(&form); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.workCenterService.AddWorkCenter(ctx.Request().Context(), form)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not create work center"), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "work center created", http.StatusCreated)
}

func (c *WorkCenterController) SaveWorkCenter(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var form dto.WorkCenterFormDTO
	if err := ctx.Bind(&form); err != nil {
		return utils.ErrorResponse(ctx, bindError(err), c.logger)
	}
	if err := ctx.Validate(&form); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.workCenterService.SaveWorkCenter(ctx.Request().Context(), id, form)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not save work center"), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "work center saved", http.StatusOK)
}

func (c *WorkCenterController) UpdateWorkCenter(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateWorkCenterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, bindError(err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.workCenterService.UpdateWorkCenter(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not update work center"), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "work center updated", http.StatusOK)
}
