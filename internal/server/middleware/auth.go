package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iudanet/scraperadmin/internal/server/jwt"
)

// Context keys set by Auth.
const (
	UserIDKey   = "user_id"
	UsernameKey = "username"
)

// credentialsError is the FastAPI wording for every rejected token.
const credentialsError = "Could not validate credentials"

// Auth создает middleware для проверки JWT токена
func Auth(logger *slog.Logger, tokens *jwt.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Извлекаем токен из заголовка Authorization
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				logger.Warn("Missing Authorization header")
				return unauthorized(c, "Not authenticated")
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("Invalid Authorization header format")
				return unauthorized(c, "Not authenticated")
			}

			// Валидируем токен
			claims, err := tokens.ValidateAccessToken(parts[1])
			if err != nil {
				logger.Warn("Invalid access token", "error", err)
				return unauthorized(c, credentialsError)
			}

			c.Set(UserIDKey, claims.UserID)
			c.Set(UsernameKey, claims.Subject)

			logger.Debug("User authenticated", "user_id", claims.UserID, "username", claims.Subject)

			return next(c)
		}
	}
}

func unauthorized(c echo.Context, detail string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, detail)
}
