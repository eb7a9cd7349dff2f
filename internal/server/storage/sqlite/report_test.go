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

func newTestReport(title, status string) *models.Report {
	now := time.Now().UTC().Truncate(time.Second)
	return &models.Report{
		Title:     title,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestReportStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	report := newTestReport("Weekly", "pending")
	report.Description = strPtr("weekly scrape summary")
	require.NoError(t, s.CreateReport(ctx, report))
	assert.Positive(t, report.ID)

	got, err := s.GetReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weekly", got.Title)
	assert.Equal(t, "pending", got.Status)
	require.NotNil(t, got.Description)
	assert.Equal(t, "weekly scrape summary", *got.Description)
	assert.Nil(t, got.FileURL)

	_, err = s.GetReport(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrReportNotFound)
}

func TestReportStorage_ListAndStatus(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	first := newTestReport("A", "pending")
	second := newTestReport("B", "processing")
	third := newTestReport("C", "pending")
	for _, r := range []*models.Report{first, second, third} {
		require.NoError(t, s.CreateReport(ctx, r))
	}

	all, err := s.ListReports(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "A", all[0].Title)

	page, err := s.ListReports(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "B", page[0].Title)

	pending, err := s.ListReportsByStatus(ctx, "pending")
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, third.ID, pending[1].ID)

	url := "/api/v1/reports/2/file"
	later := time.Now().UTC().Add(time.Minute).Truncate(time.Second)
	require.NoError(t, s.SetReportStatus(ctx, second.ID, "completed", &url, later))

	got, err := s.GetReport(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
	require.NotNil(t, got.FileURL)
	assert.Equal(t, url, *got.FileURL)
	assert.True(t, later.Equal(got.UpdatedAt))

	assert.ErrorIs(t, s.SetReportStatus(ctx, 999, "completed", nil, later), storage.ErrReportNotFound)
}
