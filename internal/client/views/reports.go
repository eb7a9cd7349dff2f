package views

import (
	"context"

	"github.com/iudanet/scraperadmin/internal/client/query"
	"github.com/iudanet/scraperadmin/pkg/api"
)

// StatusAll disables the reports status filter.
const StatusAll = "all"

// Reports is the reports page.
type Reports struct {
	cache *query.Cache
	gw    ReportsGateway
	list  *query.Query[[]api.Report]
}

// NewReports mounts the reports list.
func NewReports(cache *query.Cache, gw ReportsGateway) *Reports {
	return &Reports{
		cache: cache,
		gw:    gw,
		list:  query.Observe(cache, ReportsKey, gw.List),
	}
}

// Load returns the list, fetching it if needed.
func (v *Reports) Load(ctx context.Context) ([]api.Report, error) {
	return v.list.Result(ctx)
}

// State returns the current list state.
func (v *Reports) State() query.State[[]api.Report] {
	return v.list.State()
}

// Get loads a single report through the cache.
func (v *Reports) Get(ctx context.Context, id int64) (*api.Report, error) {
	q := query.Observe(v.cache, itemKey(ReportsKey, id), func(ctx context.Context) (*api.Report, error) {
		return v.gw.Get(ctx, id)
	})
	defer q.Close()
	return q.Result(ctx)
}

// Create requests a new report and refreshes the list.
func (v *Reports) Create(ctx context.Context, payload api.ReportCreate) (*api.Report, error) {
	return query.Mutate(ctx, v.cache, func(ctx context.Context) (*api.Report, error) {
		return v.gw.Create(ctx, payload)
	}, ReportsKey)
}

// Close unmounts the page.
func (v *Reports) Close() {
	v.list.Close()
}

// FilterReports keeps reports with the given status. StatusAll (or an empty
// filter) returns the input unchanged.
func FilterReports(reports []api.Report, status string) []api.Report {
	if status == StatusAll || status == "" {
		return reports
	}
	out := make([]api.Report, 0, len(reports))
	for _, r := range reports {
		if string(r.Status) == status {
			out = append(out, r)
		}
	}
	return out
}

// StatusLabel capitalises the status for display: "completed" -> "Completed".
func StatusLabel(s api.ReportStatus) string {
	return capitalize(string(s))
}

// CanDownload reports whether the report has a file to fetch.
func CanDownload(r api.Report) bool {
	return r.Status == api.ReportStatusCompleted && deref(r.FileURL) != ""
}

// ReportRow is one rendered report card.
type ReportRow struct {
	Title       string
	Description string
	Status      string
	Created     string
	DownloadURL string
	ID          int64
}

// NewReportRow derives the display fields of r. DownloadURL is set only
// when CanDownload holds.
func NewReportRow(r api.Report) ReportRow {
	row := ReportRow{
		ID:          r.ID,
		Title:       r.Title,
		Description: deref(r.Description),
		Status:      StatusLabel(r.Status),
		Created:     FormatDate(r.CreatedAt),
	}
	if CanDownload(r) {
		row.DownloadURL = *r.FileURL
	}
	return row
}

// ReportRows renders a list.
func ReportRows(reports []api.Report) []ReportRow {
	rows := make([]ReportRow, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, NewReportRow(r))
	}
	return rows
}
