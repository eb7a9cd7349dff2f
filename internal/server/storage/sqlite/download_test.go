package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/scraperadmin/internal/models"
	"github.com/iudanet/scraperadmin/internal/server/storage"
)

func TestDownloadStorage(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	download := &models.Download{
		Filename:    "export.csv",
		FilePath:    "exports/export.csv",
		FileSize:    2048,
		ContentType: "text/csv",
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.CreateDownload(ctx, download))
	assert.Positive(t, download.ID)

	got, err := s.GetDownload(ctx, download.ID)
	require.NoError(t, err)
	assert.Equal(t, "export.csv", got.Filename)
	assert.Equal(t, "exports/export.csv", got.FilePath)
	assert.Equal(t, int64(2048), got.FileSize)
	assert.Equal(t, "text/csv", got.ContentType)
	assert.Zero(t, got.DownloadCount)

	require.NoError(t, s.IncrementDownloadCount(ctx, download.ID))
	require.NoError(t, s.IncrementDownloadCount(ctx, download.ID))

	list, err := s.ListDownloads(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].DownloadCount)

	_, err = s.GetDownload(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrDownloadNotFound)
	assert.ErrorIs(t, s.IncrementDownloadCount(ctx, 999), storage.ErrDownloadNotFound)
}
