package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/scraperadmin/internal/models"
	"github.com/iudanet/scraperadmin/internal/server/storage"
)

const downloadColumns = `id, filename, file_path, file_size, content_type, download_count, created_at`

// CreateDownload stores a new download record
func (s *Storage) CreateDownload(ctx context.Context, download *models.Download) error {
	query := `
		INSERT INTO downloads (filename, file_path, file_size, content_type, download_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		download.Filename,
		download.FilePath,
		download.FileSize,
		download.ContentType,
		download.DownloadCount,
		download.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert download: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get download id: %w", err)
	}
	download.ID = id

	return nil
}

// GetDownload retrieves download by ID
func (s *Storage) GetDownload(ctx context.Context, id int64) (*models.Download, error) {
	query := `SELECT ` + downloadColumns + ` FROM downloads WHERE id = ?`

	download, err := scanDownload(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDownloadNotFound
		}
		return nil, fmt.Errorf("failed to get download: %w", err)
	}
	return download, nil
}

// ListDownloads returns a page of downloads ordered by ID
func (s *Storage) ListDownloads(ctx context.Context, skip, limit int) ([]*models.Download, error) {
	query := `SELECT ` + downloadColumns + ` FROM downloads ORDER BY id LIMIT ? OFFSET ?`

	rows, err := s.db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list downloads: %w", err)
	}
	defer func() { _ = rows.Close() }()

	downloads := make([]*models.Download, 0)
	for rows.Next() {
		download, err := scanDownload(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan download: %w", err)
		}
		downloads = append(downloads, download)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate downloads: %w", err)
	}

	return downloads, nil
}

// IncrementDownloadCount increments the download counter
func (s *Storage) IncrementDownloadCount(ctx context.Context, id int64) error {
	query := `UPDATE downloads SET download_count = download_count + 1 WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment download count: %w", err)
	}

	return expectOne(result, storage.ErrDownloadNotFound)
}

func scanDownload(row rowScanner) (*models.Download, error) {
	download := &models.Download{}
	err := row.Scan(
		&download.ID,
		&download.Filename,
		&download.FilePath,
		&download.FileSize,
		&download.ContentType,
		&download.DownloadCount,
		&download.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return download, nil
}
