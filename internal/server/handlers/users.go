package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iudanet/scraperadmin/internal/crypto"
	"github.com/iudanet/scraperadmin/internal/models"
	"github.com/iudanet/scraperadmin/internal/server/storage"
	"github.com/iudanet/scraperadmin/internal/validation"
	"github.com/iudanet/scraperadmin/pkg/api"
)

const (
	userNotFound  = "User not found"
	userDuplicate = "Username or email already registered"
)

// UsersHandler обрабатывает CRUD пользователей
type UsersHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	now         func() time.Time
}

// NewUsersHandler создает handler пользователей
func NewUsersHandler(logger *slog.Logger, userStorage storage.UserStorage) *UsersHandler {
	return &UsersHandler{
		logger:      logger,
		userStorage: userStorage,
		now:         time.Now,
	}
}

// List обрабатывает GET /api/v1/users/?skip=&limit=
func (h *UsersHandler) List(c echo.Context) error {
	skip, limit, err := pagination(c)
	if err != nil {
		return err
	}

	users, err := h.userStorage.ListUsers(c.Request().Context(), skip, limit)
	if err != nil {
		return internalError(err)
	}

	resp := make([]api.User, 0, len(users))
	for _, u := range users {
		resp = append(resp, toAPIUser(u))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get обрабатывает GET /api/v1/users/:id
func (h *UsersHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.userStorage.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return userError(err)
	}
	return c.JSON(http.StatusOK, toAPIUser(user))
}

// Create обрабатывает POST /api/v1/users/
func (h *UsersHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req api.UserCreate
	if err := c.Bind(&req); err != nil {
		return unprocessable("invalid request body")
	}

	// Валидация полей
	if err := validation.ValidateEmail(req.Email); err != nil {
		return unprocessable(err.Error())
	}
	if err := validation.ValidateUsername(req.Username); err != nil {
		return unprocessable(err.Error())
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return unprocessable(err.Error())
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return internalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsActive:     boolOr(req.IsActive, true),
		IsSuperuser:  boolOr(req.IsSuperuser, false),
		CreatedAt:    h.now().UTC(),
	}

	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		return userError(err)
	}

	h.logger.InfoContext(ctx, "user created", slog.Int64("user_id", user.ID), slog.String("username", user.Username))
	return c.JSON(http.StatusCreated, toAPIUser(user))
}

// Update обрабатывает PUT /api/v1/users/:id
// Меняются только переданные поля
func (h *UsersHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req api.UserUpdate
	if err := c.Bind(&req); err != nil {
		return unprocessable("invalid request body")
	}

	user, err := h.userStorage.GetUserByID(ctx, id)
	if err != nil {
		return userError(err)
	}

	if req.Email != nil {
		if err := validation.ValidateEmail(*req.Email); err != nil {
			return unprocessable(err.Error())
		}
		user.Email = *req.Email
	}
	if req.Username != nil {
		if err := validation.ValidateUsername(*req.Username); err != nil {
			return unprocessable(err.Error())
		}
		user.Username = *req.Username
	}
	if req.Password != nil {
		if err := validation.ValidatePassword(*req.Password); err != nil {
			return unprocessable(err.Error())
		}
		hash, err := crypto.HashPassword(*req.Password)
		if err != nil {
			return internalError(err)
		}
		user.PasswordHash = hash
	}
	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsSuperuser != nil {
		user.IsSuperuser = *req.IsSuperuser
	}

	if err := h.userStorage.UpdateUser(ctx, user); err != nil {
		return userError(err)
	}

	h.logger.InfoContext(ctx, "user updated", slog.Int64("user_id", user.ID))
	return c.JSON(http.StatusOK, toAPIUser(user))
}

// Delete обрабатывает DELETE /api/v1/users/:id
func (h *UsersHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.userStorage.DeleteUser(ctx, id); err != nil {
		return userError(err)
	}

	h.logger.InfoContext(ctx, "user deleted", slog.Int64("user_id", id))
	return c.NoContent(http.StatusNoContent)
}

func userError(err error) error {
	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, userNotFound)
	case errors.Is(err, storage.ErrUserAlreadyExists):
		return echo.NewHTTPError(http.StatusBadRequest, userDuplicate)
	default:
		return internalError(err)
	}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
