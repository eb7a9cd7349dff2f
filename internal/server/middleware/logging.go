package middleware

import (
	"log/slog"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// Logging создает middleware для логирования HTTP запросов
// Логирует метод, путь, статус, время выполнения, размер ответа
// НЕ логирует sensitive данные (токены, пароли)
// Пути из skipPaths не логируются (health checks и т.п.)
func Logging(logger *slog.Logger, skipPaths ...string) echo.MiddlewareFunc {
	skipMap := make(map[string]bool, len(skipPaths))
	for _, path := range skipPaths {
		skipMap[path] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if skipMap[req.URL.Path] {
				return next(c)
			}

			start := time.Now()

			// Ошибку отдаем echo, чтобы статус в ответе был уже выставлен
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			res := c.Response()

			// RequestID кладет id в ответ, запрос может прийти без него
			requestID := res.Header().Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = req.Header.Get(echo.HeaderXRequestID)
			}

			// Определяем уровень логирования на основе статуса
			logLevel := slog.LevelInfo
			if res.Status >= 500 {
				logLevel = slog.LevelError
			} else if res.Status >= 400 {
				logLevel = slog.LevelWarn
			}

			// Логируем запрос (без sensitive данных)
			logger.Log(req.Context(), logLevel, "HTTP request",
				"method", req.Method,
				"path", sanitizePath(req.URL.Path),
				"remote_addr", req.RemoteAddr,
				"user_agent", req.UserAgent(),
				"request_id", requestID,
				"status", res.Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"bytes_written", res.Size,
			)
			return nil
		}
	}
}

// sanitizePath удаляет sensitive части из пути (например, токены в URL)
// /api/v1/token/abc заменяется на /api/v1/token/***
func sanitizePath(path string) string {
	if strings.Contains(path, "/token/") || strings.Contains(path, "/reset/") {
		parts := strings.Split(path, "/")
		for i, part := range parts {
			if (part == "token" || part == "reset") && i+1 < len(parts) && parts[i+1] != "" {
				parts[i+1] = "***"
			}
		}
		return strings.Join(parts, "/")
	}

	return path
}
