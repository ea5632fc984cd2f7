package controllers

import (
	"net/http"
	"strconv"

	apperrors "maintenance-system/pkg/errors"

	"github.com/labstack/echo/v4"
)

// parseIDParam reads the :id path parameter as a positive integer.
func parseIDParam(ctx echo.Context) (uint64, error) {
	raw := ctx.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			"invalid id format",
			err,
			map[string]interface{}{"param": raw},
		)
	}
	return id, nil
}

func bindError(err error) error {
	return apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil)
}
