package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iudanet/scraperadmin/pkg/api"
)

// Pagination defaults, same as the FastAPI backend.
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// ErrorHandler renders every error as a FastAPI-style {"detail": "..."} body.
// Internal errors are logged and hidden from the client.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		detail := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				detail = msg
			} else {
				detail = http.StatusText(code)
			}
			if he.Internal != nil {
				logger.Error("request failed", "path", c.Request().URL.Path, "error", he.Internal)
			}
		} else {
			logger.Error("request failed", "path", c.Request().URL.Path, "error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, api.ErrorResponse{Detail: detail})
		}
		if err != nil {
			logger.Error("failed to write error response", "error", err)
		}
	}
}

// internalError скрывает причину от клиента, но сохраняет ее для лога
func internalError(err error) error {
	return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).SetInternal(err)
}

func unprocessable(detail string) error {
	return echo.NewHTTPError(http.StatusUnprocessableEntity, detail)
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, unprocessable("id must be a positive integer")
	}
	return id, nil
}

// pagination parses skip and limit query parameters.
func pagination(c echo.Context) (skip, limit int, err error) {
	skip, limit = DefaultSkip, DefaultLimit

	if raw := c.QueryParam("skip"); raw != "" {
		skip, err = strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return 0, 0, unprocessable("skip must be a non-negative integer")
		}
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return 0, 0, unprocessable("limit must be a non-negative integer")
		}
	}
	return skip, limit, nil
}
