package rest

import (
	stderrors "errors"

	"toolbox/utils/errors"
	"toolbox/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError converts errors to HTTP responses.
func handleError(c echo.Context, err error, operation string) error {
	var appErr *errors.AppContextError
	if !stderrors.As(err, &appErr) {
		appErr = errors.NewAppContextError(
			string(errors.ErrCodeUnknown),
			"internal server error",
			"rest",
			"RESTHandler",
			operation,
			err,
			nil,
		)
	}

	logger.Logger.Error("REST handler error",
		"error", appErr.Error(),
		"error_code", appErr.Code,
		"operation", operation,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"is_retryable", appErr.IsRetryable(),
	)

	return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
}

func handleValidationError(c echo.Context, message, field string, value interface{}) error {
	return handleError(c, errors.NewInvalidInputError(message, "rest", "RESTHandler", "validateInput", map[string]interface{}{
		"field": field,
		"value": value,
	}), "validateInput")
}
