package views

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/scraperadmin/pkg/api"
)

func TestFileKind(t *testing.T) {
	tests := []struct {
		fileType string
		want     string
	}{
		{fileType: "application/pdf", want: KindDocument},
		{fileType: "application/vnd.ms-excel", want: KindSpreadsheet},
		{fileType: "text/csv", want: KindSpreadsheet},
		{fileType: "application/zip", want: KindFile},
		{fileType: "", want: KindFile},
	}
	for _, tt := range tests {
		t.Run(tt.fileType, func(t *testing.T) {
			assert.Equal(t, tt.want, FileKind(tt.fileType))
		})
	}
}

func TestNewDownloadRow(t *testing.T) {
	row := NewDownloadRow(api.DownloadItem{
		ID:            4,
		Filename:      "export.csv",
		FileType:      "text/csv",
		FileSize:      1536,
		DownloadCount: 1200,
		CreatedAt:     time.Date(2026, 5, 6, 12, 0, 0, 0, time.Local),
	})

	assert.Equal(t, DownloadRow{
		ID:        4,
		Filename:  "export.csv",
		FileType:  "text/csv",
		Kind:      KindSpreadsheet,
		Size:      "1.5 KB",
		Created:   "2026-05-06",
		Downloads: "Downloaded 1,200 times",
	}, row)
	assert.Empty(t, DownloadRows(nil))
}

func TestSafeFilename(t *testing.T) {
	assert.Equal(t, "a.pdf", safeFilename(api.DownloadItem{Filename: "a.pdf"}))
	assert.Equal(t, "passwd", safeFilename(api.DownloadItem{Filename: "../../etc/passwd"}))
	assert.Equal(t, "x.csv", safeFilename(api.DownloadItem{Filename: `C:\tmp\x.csv`}))
	assert.Equal(t, "download-5", safeFilename(api.DownloadItem{ID: 5, Filename: ""}))
	assert.Equal(t, "download-6", safeFilename(api.DownloadItem{ID: 6, Filename: ".."}))
}

func TestDownloads_Save(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	gw := &DownloadsGatewayMock{
		ListFunc: func(ctx context.Context) ([]api.DownloadItem, error) {
			return []api.DownloadItem{{ID: 1, Filename: "report.pdf"}}, nil
		},
		DownloadFunc: func(ctx context.Context, id int64) ([]byte, error) {
			return []byte("%PDF-1.7"), nil
		},
	}
	cache := newCache()
	v := NewDownloads(cache, gw, fs)
	defer v.Close()

	items, err := v.Load(ctx)
	require.NoError(t, err)

	path, err := v.Save(ctx, items[0], "/out")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/out", "report.pdf"), path)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(data))

	entries, err := afero.ReadDir(fs, "/out")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not remain")

	// счетчик скачиваний изменился, список перечитывается
	cache.Wait()
	assert.Len(t, gw.ListCalls(), 2)
	assert.Equal(t, int64(1), gw.DownloadCalls()[0].Id)
}

func TestDownloads_SaveFailureLeavesNothing(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	boom := errors.New("connection reset")
	gw := &DownloadsGatewayMock{
		ListFunc: func(ctx context.Context) ([]api.DownloadItem, error) { return nil, nil },
		DownloadFunc: func(ctx context.Context, id int64) ([]byte, error) {
			return nil, boom
		},
	}
	v := NewDownloads(newCache(), gw, fs)
	defer v.Close()

	_, err := v.Save(ctx, api.DownloadItem{ID: 1, Filename: "report.pdf"}, "/out")
	assert.ErrorIs(t, err, boom)

	_, err = fs.Stat("/out/report.pdf")
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, gw.ListCalls())
}

func TestDownloads_SaveReadOnlyFs(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/out", 0o755))
	fs := afero.NewReadOnlyFs(base)

	gw := &DownloadsGatewayMock{
		ListFunc: func(ctx context.Context) ([]api.DownloadItem, error) { return nil, nil },
		DownloadFunc: func(ctx context.Context, id int64) ([]byte, error) {
			return []byte("data"), nil
		},
	}
	v := NewDownloads(newCache(), gw, fs)
	defer v.Close()

	_, err := v.Save(context.Background(), api.DownloadItem{ID: 1, Filename: "a.csv"}, "/out")
	assert.Error(t, err)

	entries, err := afero.ReadDir(base, "/out")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
