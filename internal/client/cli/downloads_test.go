package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/scraperadmin/internal/client/views"
	"github.com/iudanet/scraperadmin/pkg/api"
)

func TestRunDownloadsGet_Listed(t *testing.T) {
	c, out, fs := newTestCli(t, "")
	gw := &views.DownloadsGatewayMock{
		ListFunc: func(ctx context.Context) ([]api.DownloadItem, error) {
			return []api.DownloadItem{{ID: 3, Filename: "report.csv", FileSize: 2048}}, nil
		},
		DownloadFunc: func(ctx context.Context, id int64) ([]byte, error) {
			return []byte("a,b\n"), nil
		},
	}
	c.downloads = gw

	require.NoError(t, c.runDownloadsGet(t.Context(), 3, "/out"))

	data, err := afero.ReadFile(fs, "/out/report.csv")
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))
	assert.Contains(t, out.String(), "✓ Saved /out/report.csv (2 KB)")
}

func TestRunDownloadsGet_BeyondListedPage(t *testing.T) {
	c, out, fs := newTestCli(t, "")
	gw := &views.DownloadsGatewayMock{
		ListFunc: func(ctx context.Context) ([]api.DownloadItem, error) {
			// сервер отдает только первую страницу
			return []api.DownloadItem{{ID: 1, Filename: "first.pdf"}}, nil
		},
		DownloadFunc: func(ctx context.Context, id int64) ([]byte, error) {
			return []byte("payload"), nil
		},
	}
	c.downloads = gw

	require.NoError(t, c.runDownloadsGet(t.Context(), 250, "/out"))

	require.Len(t, gw.DownloadCalls(), 1)
	assert.Equal(t, int64(250), gw.DownloadCalls()[0].Id)

	data, err := afero.ReadFile(fs, "/out/download-250")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.Contains(t, out.String(), "✓ Saved /out/download-250")
}

func TestRunDownloadsGet_UnknownID(t *testing.T) {
	c, _, fs := newTestCli(t, "")
	c.downloads = &views.DownloadsGatewayMock{
		ListFunc: func(ctx context.Context) ([]api.DownloadItem, error) {
			return nil, nil
		},
		DownloadFunc: func(ctx context.Context, id int64) ([]byte, error) {
			return nil, errors.New("Download not found")
		},
	}

	err := c.runDownloadsGet(t.Context(), 99, "/out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download 99 failed")

	exists, _ := afero.Exists(fs, "/out/download-99")
	assert.False(t, exists)
}
