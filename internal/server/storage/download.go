package storage

import (
	"context"

	"github.com/iudanet/scraperadmin/internal/models"
)

// DownloadStorage defines interface for download records persistence.
// File contents are not stored here, only their metadata.
type DownloadStorage interface {
	// CreateDownload stores a new download record and sets download.ID
	CreateDownload(ctx context.Context, download *models.Download) error

	// GetDownload retrieves download by ID
	// Returns ErrDownloadNotFound if download doesn't exist
	GetDownload(ctx context.Context, id int64) (*models.Download, error)

	// ListDownloads returns downloads ordered by ID
	ListDownloads(ctx context.Context, skip, limit int) ([]*models.Download, error)

	// IncrementDownloadCount adds one to the download counter
	// Returns ErrDownloadNotFound if download doesn't exist
	IncrementDownloadCount(ctx context.Context, id int64) error
}

// Storage is everything the API server persists.
type Storage interface {
	UserStorage
	ReportStorage
	DownloadStorage
	Close() error
}
