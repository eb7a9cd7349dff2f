// Package views binds each console page to the query cache.
//
// A view mounts its keyed query on construction and must be closed by the
// caller. Display rows are derived on every render and never cached.
package views

import (
	"context"
	"fmt"

	"github.com/iudanet/scraperadmin/internal/client/gateway"
	"github.com/iudanet/scraperadmin/internal/client/query"
	"github.com/iudanet/scraperadmin/pkg/api"
)

//go:generate moq -out gateway_mock.go . UsersGateway DownloadsGateway

// Cache keys. Mutations invalidate by resource, so every parameterisation
// of a resource is refreshed together.
var (
	UsersKey     = query.NewKey("users")
	ReportsKey   = query.NewKey("reports")
	DownloadsKey = query.NewKey("downloads")
	HealthKey    = query.NewKey("health")
)

// UsersGateway is implemented by gateway.Users.
type UsersGateway interface {
	List(ctx context.Context, params gateway.ListParams) ([]api.User, error)
	Get(ctx context.Context, id int64) (*api.User, error)
	Create(ctx context.Context, payload api.UserCreate) (*api.User, error)
	Update(ctx context.Context, id int64, payload api.UserUpdate) (*api.User, error)
	Delete(ctx context.Context, id int64) error
}

// ReportsGateway is implemented by gateway.Reports.
type ReportsGateway interface {
	List(ctx context.Context) ([]api.Report, error)
	Get(ctx context.Context, id int64) (*api.Report, error)
	Create(ctx context.Context, payload api.ReportCreate) (*api.Report, error)
}

// DownloadsGateway is implemented by gateway.Downloads.
type DownloadsGateway interface {
	List(ctx context.Context) ([]api.DownloadItem, error)
	Download(ctx context.Context, id int64) ([]byte, error)
}

// HealthGateway is implemented by gateway.Health.
type HealthGateway interface {
	Check(ctx context.Context) (*api.HealthResponse, error)
}

var (
	_ UsersGateway     = (*gateway.Users)(nil)
	_ ReportsGateway   = (*gateway.Reports)(nil)
	_ DownloadsGateway = (*gateway.Downloads)(nil)
	_ HealthGateway    = (*gateway.Health)(nil)
)

// LoadErrorMessage is the generic text a page shows when its query failed.
func LoadErrorMessage(resource string) string {
	return fmt.Sprintf("Error loading %s. Please try again.", resource)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func itemKey(key query.Key, id int64) query.Key {
	return key.With(fmt.Sprintf("id=%d", id))
}
