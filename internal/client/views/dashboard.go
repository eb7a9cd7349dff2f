package views

import (
	"context"
	"sync"

	"github.com/iudanet/scraperadmin/internal/client/gateway"
	"github.com/iudanet/scraperadmin/internal/client/query"
	"github.com/iudanet/scraperadmin/pkg/api"
)

// System status labels.
const (
	SystemHealthy = "Healthy"
	SystemUnknown = "Unknown"
)

// Dashboard aggregates the health check with the size of each collection.
// It mounts the same keys as the list pages, so their fetches are shared.
type Dashboard struct {
	health    *query.Query[*api.HealthResponse]
	users     *Users
	reports   *Reports
	downloads *Downloads
}

// DashboardGateways groups the gateways the dashboard reads from.
type DashboardGateways struct {
	Health    HealthGateway
	Users     UsersGateway
	Reports   ReportsGateway
	Downloads DownloadsGateway
}

// NewDashboard mounts the dashboard queries.
func NewDashboard(cache *query.Cache, gws DashboardGateways) *Dashboard {
	return &Dashboard{
		health:    query.Observe(cache, HealthKey, gws.Health.Check),
		users:     NewUsers(cache, gws.Users, gateway.DefaultListParams()),
		reports:   NewReports(cache, gws.Reports),
		downloads: NewDownloads(cache, gws.Downloads, nil),
	}
}

// Stat is one dashboard tile. Err is set when its query failed.
type Stat struct {
	Err   error
	Name  string
	Value string
}

// Load runs all dashboard queries concurrently. A failing query only
// affects its own tile.
func (d *Dashboard) Load(ctx context.Context) []Stat {
	stats := make([]Stat, 4)
	var wg sync.WaitGroup

	wg.Add(4)
	go func() {
		defer wg.Done()
		users, err := d.users.Load(ctx)
		stats[0] = countStat("Total Users", len(users), err)
	}()
	go func() {
		defer wg.Done()
		reports, err := d.reports.Load(ctx)
		stats[1] = countStat("Reports Generated", len(reports), err)
	}()
	go func() {
		defer wg.Done()
		items, err := d.downloads.Load(ctx)
		stats[2] = countStat("Downloads", len(items), err)
	}()
	go func() {
		defer wg.Done()
		resp, err := d.health.Result(ctx)
		stats[3] = Stat{Name: "System Status", Value: SystemStatus(resp, err), Err: err}
	}()
	wg.Wait()

	return stats
}

// Close unmounts every dashboard query.
func (d *Dashboard) Close() {
	d.health.Close()
	d.users.Close()
	d.reports.Close()
	d.downloads.Close()
}

// SystemStatus is "Healthy" only for a successful check reporting "healthy".
func SystemStatus(resp *api.HealthResponse, err error) string {
	if err == nil && resp != nil && resp.Status == api.HealthStatusHealthy {
		return SystemHealthy
	}
	return SystemUnknown
}

func countStat(name string, n int, err error) Stat {
	if err != nil {
		return Stat{Name: name, Value: "n/a", Err: err}
	}
	return Stat{Name: name, Value: FormatCount(int64(n))}
}
