package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/scraperadmin/internal/models"
	"github.com/iudanet/scraperadmin/internal/server/storage"
)

const reportColumns = `id, title, description, status, file_url, created_at, updated_at`

// CreateReport stores a new report
func (s *Storage) CreateReport(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (title, description, status, file_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		report.Title,
		report.Description,
		report.Status,
		report.FileURL,
		report.CreatedAt,
		report.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get report id: %w", err)
	}
	report.ID = id

	return nil
}

// GetReport retrieves report by ID
func (s *Storage) GetReport(ctx context.Context, id int64) (*models.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = ?`

	report, err := scanReport(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}

// ListReports returns a page of reports ordered by ID
func (s *Storage) ListReports(ctx context.Context, skip, limit int) ([]*models.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports ORDER BY id LIMIT ? OFFSET ?`
	return s.queryReports(ctx, query, limit, skip)
}

// ListReportsByStatus returns all reports in status, oldest first
func (s *Storage) ListReportsByStatus(ctx context.Context, status string) ([]*models.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE status = ? ORDER BY id`
	return s.queryReports(ctx, query, status)
}

// SetReportStatus updates status and file URL of a report
func (s *Storage) SetReportStatus(ctx context.Context, id int64, status string, fileURL *string, updatedAt time.Time) error {
	query := `UPDATE reports SET status = ?, file_url = ?, updated_at = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, status, fileURL, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update report status: %w", err)
	}

	return expectOne(result, storage.ErrReportNotFound)
}

func (s *Storage) queryReports(ctx context.Context, query string, args ...any) ([]*models.Report, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	reports := make([]*models.Report, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}

	return reports, nil
}

func scanReport(row rowScanner) (*models.Report, error) {
	report := &models.Report{}
	var description, fileURL sql.NullString

	err := row.Scan(
		&report.ID,
		&report.Title,
		&description,
		&report.Status,
		&fileURL,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	report.Description = nullString(description)
	report.FileURL = nullString(fileURL)
	return report, nil
}
