// Package gateway maps logical operations on each server resource to exactly
// one HTTP round trip. No validation happens here; the server owns it.
package gateway

import (
	"context"

	httpClient "github.com/iudanet/scraperadmin/internal/client/api"
)

//go:generate moq -out requester_mock.go . Requester

// Requester is the part of the HTTP client the gateways need.
type Requester interface {
	Do(ctx context.Context, method, path string, opts *httpClient.RequestOptions, result any) (*httpClient.Response, error)
}

var _ Requester = (*httpClient.Client)(nil)
