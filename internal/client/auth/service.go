package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/scraperadmin/pkg/api"
)

// ErrInvalidCredentials is returned when the username or password is empty.
var ErrInvalidCredentials = errors.New("username and password are required")

// Service предоставляет функции авторизации: login, logout, status
type Service struct {
	authenticator Authenticator
	session       *Session
	logger        *slog.Logger
	now           func() time.Time
}

// NewService создает новый сервис авторизации
func NewService(authenticator Authenticator, session *Session, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		authenticator: authenticator,
		session:       session,
		logger:        logger,
		now:           time.Now,
	}
}

// Login выполняет аутентификацию и сохраняет полученный токен
func (s *Service) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrInvalidCredentials
	}

	resp, err := s.authenticator.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return err
	}
	if resp.AccessToken == "" {
		return fmt.Errorf("server returned empty access token")
	}

	if err := s.session.SetToken(ctx, resp.AccessToken, username); err != nil {
		return err
	}

	s.logger.Info("logged in", "username", username)
	return nil
}

// LoginWithToken stores a token obtained elsewhere.
// The username is taken from the "sub" claim when the token is a JWT.
func (s *Service) LoginWithToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token is empty")
	}

	var username string
	if claims, err := parseClaims(token); err == nil {
		username = claims.Subject
	}
	return s.session.SetToken(ctx, token, username)
}

// Logout удаляет локальный токен
func (s *Service) Logout(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info("logged out")
	return nil
}

// Status describes the locally stored session.
type Status struct {
	SavedAt   time.Time
	ExpiresAt *time.Time
	Username  string
	LoggedIn  bool
	Expired   bool
}

// Status reports whether a token is stored and, for JWTs, when it expires.
// The signature is not verified; only the server can do that.
func (s *Service) Status(ctx context.Context) (*Status, error) {
	data, err := s.session.Data(ctx)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return &Status{}, nil
	}

	st := &Status{
		LoggedIn: true,
		Username: data.Username,
		SavedAt:  time.Unix(data.SavedAt, 0),
	}

	claims, err := parseClaims(data.Token)
	if err != nil {
		// непрозрачный токен, срок действия неизвестен
		return st, nil
	}
	if st.Username == "" {
		st.Username = claims.Subject
	}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		st.ExpiresAt = &exp
		st.Expired = !s.now().Before(exp)
	}
	return st, nil
}

func parseClaims(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}
