package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iudanet/scraperadmin/internal/crypto"
	"github.com/iudanet/scraperadmin/internal/server/jwt"
	"github.com/iudanet/scraperadmin/internal/server/storage"
	"github.com/iudanet/scraperadmin/pkg/api"
)

// TokenTypeBearer is the only token type issued by Login.
const TokenTypeBearer = "bearer"

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	tokens      *jwt.Service
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, tokens *jwt.Service) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		userStorage: userStorage,
		tokens:      tokens,
	}
}

// Login обрабатывает POST /api/v1/auth/login
// Проверяет пароль и выдает access token
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	// Парсим request body
	var req api.LoginRequest
	if err := c.Bind(&req); err != nil {
		return unprocessable("invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return unprocessable("username and password are required")
	}

	user, err := h.userStorage.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login for unknown user", slog.String("username", req.Username))
			return badCredentials(c)
		}
		return internalError(err)
	}

	if err := crypto.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			h.logger.WarnContext(ctx, "wrong password", slog.String("username", req.Username))
			return badCredentials(c)
		}
		return internalError(err)
	}

	if !user.IsActive {
		return echo.NewHTTPError(http.StatusBadRequest, "Inactive user")
	}

	token, err := h.tokens.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return internalError(err)
	}

	h.logger.InfoContext(ctx, "user logged in", slog.String("username", user.Username))

	return c.JSON(http.StatusOK, api.TokenResponse{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
	})
}

func badCredentials(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect username or password")
}
