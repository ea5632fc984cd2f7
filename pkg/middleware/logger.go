package middleware

import (
	"context"

	"maintenance-system/pkg/contextkeys"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// InjectLogger puts a child logger tagged with the request id into the request context.
func InjectLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Response().Header().Get(echo.HeaderXRequestID)
			reqLogger := logger.With(zap.String("request_id", reqID))

			c.Set("logger", reqLogger)
			ctx := context.WithValue(c.Request().Context(), contextkeys.LoggerKey, reqLogger)
			ctx = context.WithValue(ctx, contextkeys.RequestIDKey, reqID)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
