package gateway

import (
	"context"
	"fmt"
	"net/http"

	httpClient "github.com/iudanet/scraperadmin/internal/client/api"
	"github.com/iudanet/scraperadmin/pkg/api"
)

// Auth is the gateway for the login endpoint used by the login flow.
type Auth struct {
	r Requester
}

// NewAuth creates an auth gateway.
func NewAuth(r Requester) *Auth {
	return &Auth{r: r}
}

// Login exchanges credentials for an access token.
func (g *Auth) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if _, err := g.r.Do(ctx, http.MethodPost, "/v1/auth/login", &httpClient.RequestOptions{Body: req}, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}
