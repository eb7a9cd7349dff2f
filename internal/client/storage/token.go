package storage

import (
	"context"
)

//go:generate moq -out token_mock.go . TokenStorage

// TokenStorage defines interface for storing the session token on client.
// It is the lowest layer: no lifecycle policy lives here, only raw persistence.
// The clearing policy (once per login epoch) is enforced by auth.Session.
type TokenStorage interface {
	// SaveToken stores the token as-is, replacing any previous one
	SaveToken(ctx context.Context, token *TokenData) error

	// GetToken retrieves the stored token
	// Returns ErrTokenNotFound if no token exists
	GetToken(ctx context.Context) (*TokenData, error)

	// DeleteToken removes the stored token
	// Returns ErrTokenNotFound if no token exists
	DeleteToken(ctx context.Context) error
}

// TokenData represents the persisted session token.
type TokenData struct {
	Token    string `json:"token"`
	Username string `json:"username,omitempty"`
	SavedAt  int64  `json:"saved_at"`
}
