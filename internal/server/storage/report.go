package storage

import (
	"context"
	"time"

	"github.com/iudanet/scraperadmin/internal/models"
)

// ReportStorage defines interface for report persistence
type ReportStorage interface {
	// CreateReport stores a new report and sets report.ID
	CreateReport(ctx context.Context, report *models.Report) error

	// GetReport retrieves report by ID
	// Returns ErrReportNotFound if report doesn't exist
	GetReport(ctx context.Context, id int64) (*models.Report, error)

	// ListReports returns reports ordered by ID
	ListReports(ctx context.Context, skip, limit int) ([]*models.Report, error)

	// ListReportsByStatus returns every report in the given status
	ListReportsByStatus(ctx context.Context, status string) ([]*models.Report, error)

	// SetReportStatus moves report to status; fileURL is stored as given (nil clears it)
	// Returns ErrReportNotFound if report doesn't exist
	SetReportStatus(ctx context.Context, id int64, status string, fileURL *string, updatedAt time.Time) error
}
