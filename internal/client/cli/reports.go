package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/scraperadmin/internal/client/views"
	"github.com/iudanet/scraperadmin/pkg/api"
)

func (c *Cli) runReportsList(ctx context.Context, status string) error {
	if status != views.StatusAll && !api.ReportStatus(status).Valid() {
		return fmt.Errorf("unknown status %q, use all, pending, processing, completed or failed", status)
	}

	v := views.NewReports(c.cache, c.reports)
	defer v.Close()

	reports, err := v.Load(ctx)
	if err != nil {
		return c.loadFailed("reports", err)
	}

	c.io.Println("=== Reports ===")
	c.io.Println()

	reports = views.FilterReports(reports, status)
	if len(reports) == 0 {
		c.io.Println("No reports")
		c.io.Println("Use 'scraperadmin reports create --title ...' to generate one.")
		return nil
	}

	rows := make([][]string, 0, len(reports))
	for _, row := range views.ReportRows(reports) {
		rows = append(rows, []string{
			strconv.FormatInt(row.ID, 10),
			row.Title,
			row.Status,
			row.Created,
			row.DownloadURL,
		})
	}
	return table(c.io, []string{"ID", "TITLE", "STATUS", "CREATED", "DOWNLOAD"}, rows)
}

func (c *Cli) runReportsGet(ctx context.Context, id int64) error {
	v := views.NewReports(c.cache, c.reports)
	defer v.Close()

	report, err := v.Get(ctx, id)
	if err != nil {
		return c.loadFailed("report", err)
	}
	return render(c.io, "report", reportTemplate, views.NewReportRow(*report))
}

type reportCreateOptions struct {
	Title       string
	Description string
	Status      string
}

func (c *Cli) runReportsCreate(ctx context.Context, opts reportCreateOptions) error {
	if opts.Title == "" {
		return fmt.Errorf("--title is required")
	}

	payload := api.ReportCreate{
		Title:       opts.Title,
		Description: optional(opts.Description),
		Status:      api.ReportStatus(opts.Status),
	}

	v := views.NewReports(c.cache, c.reports)
	defer v.Close()

	report, err := v.Create(ctx, payload)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	c.io.Printf("✓ Report %q created (ID: %d, status: %s)\n", report.Title, report.ID, views.StatusLabel(report.Status))
	return nil
}
