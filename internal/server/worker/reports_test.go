package worker

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/scraperadmin/internal/models"
	"github.com/iudanet/scraperadmin/internal/server/storage/sqlite"
)

func newProcessor(t *testing.T, files afero.Fs) (*ReportProcessor, *sqlite.Storage) {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewReportProcessor(store, files, logger, time.Second), store
}

func createReport(t *testing.T, store *sqlite.Storage, title, status string) *models.Report {
	t.Helper()
	now := time.Now().UTC()
	report := &models.Report{Title: title, Status: status, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.CreateReport(context.Background(), report))
	return report
}

func TestReportProcessor_Advance(t *testing.T) {
	ctx := context.Background()
	files := afero.NewMemMapFs()
	p, store := newProcessor(t, files)

	report := createReport(t, store, "Weekly, scraped", "pending")
	done := createReport(t, store, "Old", "completed")

	// шаг 1: pending -> processing
	require.NoError(t, p.Advance(ctx))
	got, err := store.GetReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "processing", got.Status)
	assert.Nil(t, got.FileURL)

	// шаг 2: processing -> completed с файлом
	require.NoError(t, p.Advance(ctx))
	got, err = store.GetReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
	require.NotNil(t, got.FileURL)

	downloads, err := store.ListDownloads(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, downloads, 1)
	assert.Equal(t, "/api/v1/downloads/"+itoa(downloads[0].ID), *got.FileURL)
	assert.Equal(t, "report-"+itoa(report.ID)+".csv", downloads[0].Filename)

	content, err := afero.ReadFile(files, downloads[0].FilePath)
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), downloads[0].FileSize)
	assert.True(t, strings.HasPrefix(string(content), "id,title,description,created_at,generated_at\n"))
	assert.Contains(t, string(content), `"Weekly, scraped"`)

	// уже завершенные отчеты не трогаются
	old, err := store.GetReport(ctx, done.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", old.Status)
	assert.Nil(t, old.FileURL)
}

func TestReportProcessor_RenderFailureMarksFailed(t *testing.T) {
	ctx := context.Background()
	p, store := newProcessor(t, afero.NewReadOnlyFs(afero.NewMemMapFs()))

	report := createReport(t, store, "Broken", "processing")

	require.NoError(t, p.Advance(ctx))

	got, err := store.GetReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "failed", got.Status)
	assert.Nil(t, got.FileURL)

	downloads, err := store.ListDownloads(ctx, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, downloads)
}

func TestReportProcessor_RunStopsOnCancel(t *testing.T) {
	p, store := newProcessor(t, afero.NewMemMapFs())
	p.step = 10 * time.Millisecond
	report := createReport(t, store, "Fast", "pending")

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(stopped)
	}()

	require.Eventually(t, func() bool {
		got, err := store.GetReport(context.Background(), report.ID)
		return err == nil && got.Status == "completed"
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestReportProcessor_RunDisabled(t *testing.T) {
	p, _ := newProcessor(t, afero.NewMemMapFs())
	p.step = 0

	// возвращается сразу
	p.Run(context.Background())
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
