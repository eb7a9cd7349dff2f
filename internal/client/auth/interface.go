package auth

import (
	"context"

	"github.com/iudanet/scraperadmin/pkg/api"
)

//go:generate moq -out authenticator_mock.go . Authenticator

// Authenticator exchanges credentials for an access token.
// It is implemented by gateway.Auth.
type Authenticator interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
}
