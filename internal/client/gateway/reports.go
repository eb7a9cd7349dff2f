package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	httpClient "github.com/iudanet/scraperadmin/internal/client/api"
	"github.com/iudanet/scraperadmin/pkg/api"
)

// Reports is the gateway for /v1/reports/.
type Reports struct {
	r Requester
}

// NewReports creates a reports gateway.
func NewReports(r Requester) *Reports {
	return &Reports{r: r}
}

// List fetches all reports.
func (g *Reports) List(ctx context.Context) ([]api.Report, error) {
	var reports []api.Report
	if _, err := g.r.Do(ctx, http.MethodGet, "/v1/reports/", nil, &reports); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

// Get fetches a single report.
func (g *Reports) Get(ctx context.Context, id int64) (*api.Report, error) {
	var report api.Report
	path := "/v1/reports/" + strconv.FormatInt(id, 10)
	if _, err := g.r.Do(ctx, http.MethodGet, path, nil, &report); err != nil {
		return nil, fmt.Errorf("get report %d: %w", id, err)
	}
	return &report, nil
}

// Create asks the server to generate a report.
func (g *Reports) Create(ctx context.Context, payload api.ReportCreate) (*api.Report, error) {
	var report api.Report
	if _, err := g.r.Do(ctx, http.MethodPost, "/v1/reports/", &httpClient.RequestOptions{Body: payload}, &report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	return &report, nil
}
