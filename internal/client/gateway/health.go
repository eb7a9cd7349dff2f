package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/scraperadmin/pkg/api"
)

// Health is the gateway for GET /health.
type Health struct {
	r Requester
}

// NewHealth creates a health gateway.
func NewHealth(r Requester) *Health {
	return &Health{r: r}
}

// Check returns the server health status.
func (g *Health) Check(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if _, err := g.r.Do(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}
	return &resp, nil
}
