package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/scraperadmin/internal/client/storage"
)

//go:generate moq -out redirector_mock.go . Redirector

// Redirector sends the user to the external login flow.
type Redirector interface {
	RedirectToLogin(ctx context.Context)
}

// RedirectFunc adapts a plain function to Redirector.
type RedirectFunc func(ctx context.Context)

// RedirectToLogin calls f.
func (f RedirectFunc) RedirectToLogin(ctx context.Context) { f(ctx) }

// Session owns the process-wide session token.
// Token is read on every request; SetToken starts a new login epoch;
// Expire clears the token and redirects at most once per epoch.
type Session struct {
	store    storage.TokenStorage
	redirect Redirector
	logger   *slog.Logger
	now      func() time.Time
	mu       sync.Mutex
	expired  bool
}

// NewSession creates a session over the given storage. redirect may be nil.
func NewSession(store storage.TokenStorage, redirect Redirector, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		store:    store,
		redirect: redirect,
		logger:   logger,
		now:      time.Now,
	}
}

// Token returns the stored token or "" when there is none.
func (s *Session) Token(ctx context.Context) (string, error) {
	data, err := s.store.GetToken(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read session token: %w", err)
	}
	return data.Token, nil
}

// Data returns the stored token record, or nil when logged out.
func (s *Session) Data(ctx context.Context) (*storage.TokenData, error) {
	data, err := s.store.GetToken(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session token: %w", err)
	}
	return data, nil
}

// SetToken stores the token as-is and starts a new login epoch.
func (s *Session) SetToken(ctx context.Context, token, username string) error {
	if token == "" {
		return fmt.Errorf("token is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SaveToken(ctx, &storage.TokenData{
		Token:    token,
		Username: username,
		SavedAt:  s.now().Unix(),
	}); err != nil {
		return fmt.Errorf("failed to save session token: %w", err)
	}
	s.expired = false
	return nil
}

// Expire is called when the server answers 401. The first call of an epoch
// deletes the token and redirects to login; later calls are no-ops.
// The bool result reports whether this call did the clearing.
func (s *Session) Expire(ctx context.Context) (bool, error) {
	s.mu.Lock()
	if s.expired {
		s.mu.Unlock()
		return false, nil
	}
	s.expired = true
	err := s.store.DeleteToken(ctx)
	s.mu.Unlock()

	if err != nil && !errors.Is(err, storage.ErrTokenNotFound) {
		// токен мог остаться, но редирект всё равно нужен
		s.logger.Error("failed to delete session token", "error", err)
	}

	if s.redirect != nil {
		s.redirect.RedirectToLogin(ctx)
	}

	if err != nil && !errors.Is(err, storage.ErrTokenNotFound) {
		return true, fmt.Errorf("failed to delete session token: %w", err)
	}
	return true, nil
}

// Clear removes the token on explicit logout. It does not redirect.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteToken(ctx); err != nil && !errors.Is(err, storage.ErrTokenNotFound) {
		return fmt.Errorf("failed to delete session token: %w", err)
	}
	return nil
}
