package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate moq -out interceptor_mock.go . TokenSource Expirer

// Interceptor is one stage of the client pipeline: a request transform and a
// response transform. Either hook may be nil.
type Interceptor struct {
	// OnRequest may return a replacement request (e.g. with a new context).
	// Returning nil keeps the current one. An error aborts dispatch.
	OnRequest func(req *http.Request) (*http.Request, error)

	// OnResponse receives the final request, the raw response (nil on transport
	// failure) and the error so far. Its return value replaces that error.
	OnResponse func(req *http.Request, resp *http.Response, err error) error

	Name string
}

// TokenSource отдает текущий session token. Пустая строка — токена нет.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Expirer ends the current session after the server rejected it.
// The bool result reports whether this call performed the clearing.
type Expirer interface {
	Expire(ctx context.Context) (bool, error)
}

// AuthInterceptor attaches "Authorization: Bearer <token>" when a token is stored.
func AuthInterceptor(src TokenSource) Interceptor {
	return Interceptor{
		Name: "auth",
		OnRequest: func(req *http.Request) (*http.Request, error) {
			token, err := src.Token(req.Context())
			if err != nil {
				return nil, err
			}
			if token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			return nil, nil
		},
	}
}

// UnauthorizedInterceptor expires the session on a 401 and still hands the
// error to the caller, so the page can render its error state.
func UnauthorizedInterceptor(exp Expirer, logger *slog.Logger) Interceptor {
	return Interceptor{
		Name: "unauthorized",
		OnResponse: func(req *http.Request, resp *http.Response, err error) error {
			if !IsUnauthorized(err) {
				return err
			}
			cleared, expErr := exp.Expire(req.Context())
			if expErr != nil {
				logger.Warn("failed to expire session", "error", expErr)
			} else if cleared {
				logger.Info("session expired by server", "path", sanitizePath(req.URL.Path))
			}
			return err
		},
	}
}

type startKey struct{}

// LoggingInterceptor логирует метод, путь, статус и время выполнения.
// НЕ логирует sensitive данные (токены, заголовки, тела запросов)
func LoggingInterceptor(logger *slog.Logger) Interceptor {
	return Interceptor{
		Name: "logging",
		OnRequest: func(req *http.Request) (*http.Request, error) {
			ctx := context.WithValue(req.Context(), startKey{}, time.Now())
			return req.WithContext(ctx), nil
		},
		OnResponse: func(req *http.Request, resp *http.Response, err error) error {
			var duration time.Duration
			if start, ok := req.Context().Value(startKey{}).(time.Time); ok {
				duration = time.Since(start)
			}

			status := 0
			if resp != nil {
				status = resp.StatusCode
			}

			// Определяем уровень логирования на основе статуса
			logLevel := slog.LevelDebug
			switch {
			case err != nil && resp == nil:
				logLevel = slog.LevelError
			case status >= 500:
				logLevel = slog.LevelError
			case status >= 400:
				logLevel = slog.LevelWarn
			}

			attrs := []any{
				"method", req.Method,
				"path", sanitizePath(req.URL.Path),
				"status", status,
				"duration_ms", duration.Milliseconds(),
			}
			if id := req.Header.Get(RequestIDHeader); id != "" {
				attrs = append(attrs, "request_id", id)
			}
			if err != nil {
				attrs = append(attrs, "error", err)
			}

			logger.Log(req.Context(), logLevel, "HTTP request", attrs...)
			return err
		},
	}
}

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// RequestIDInterceptor sets X-Request-ID unless the caller already did.
func RequestIDInterceptor() Interceptor {
	return Interceptor{
		Name: "request_id",
		OnRequest: func(req *http.Request) (*http.Request, error) {
			if req.Header.Get(RequestIDHeader) == "" {
				req.Header.Set(RequestIDHeader, uuid.NewString())
			}
			return nil, nil
		},
	}
}

// sanitizePath удаляет sensitive части из пути (например, токены в URL)
// /v1/users/42 остается как есть, но /v1/reset/TOKEN заменяется на /v1/reset/***
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
