package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iudanet/scraperadmin/pkg/api"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger *slog.Logger
	db     Pinger
}

// NewHealthHandler создает новый handler для health check
// db может быть nil, тогда проверяется только сам процесс
func NewHealthHandler(logger *slog.Logger, db Pinger) *HealthHandler {
	return &HealthHandler{
		logger: logger,
		db:     db,
	}
}

// Health обрабатывает GET /health и GET /api/health
// Ответ {"status":"healthy"}, либо "unhealthy" с 503, если база недоступна
func (h *HealthHandler) Health(c echo.Context) error {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			h.logger.Error("health check failed", slog.Any("error", err))
			return c.JSON(http.StatusServiceUnavailable, api.HealthResponse{Status: "unhealthy"})
		}
	}

	return c.JSON(http.StatusOK, api.HealthResponse{Status: api.HealthStatusHealthy})
}
