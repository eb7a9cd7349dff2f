package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	httpClient "github.com/iudanet/scraperadmin/internal/client/api"
	"github.com/iudanet/scraperadmin/pkg/api"
)

// Downloads is the gateway for /v1/downloads/.
type Downloads struct {
	r Requester
}

// NewDownloads creates a downloads gateway.
func NewDownloads(r Requester) *Downloads {
	return &Downloads{r: r}
}

// List fetches all downloadable files.
func (g *Downloads) List(ctx context.Context) ([]api.DownloadItem, error) {
	var items []api.DownloadItem
	if _, err := g.r.Do(ctx, http.MethodGet, "/v1/downloads/", nil, &items); err != nil {
		return nil, fmt.Errorf("list downloads: %w", err)
	}
	return items, nil
}

// Download fetches the raw file content.
func (g *Downloads) Download(ctx context.Context, id int64) ([]byte, error) {
	path := "/v1/downloads/" + strconv.FormatInt(id, 10)
	resp, err := g.r.Do(ctx, http.MethodGet, path, &httpClient.RequestOptions{ResponseType: httpClient.ResponseBinary}, nil)
	if err != nil {
		return nil, fmt.Errorf("download file %d: %w", id, err)
	}
	return resp.Body, nil
}
