package views

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/iudanet/scraperadmin/internal/client/query"
	"github.com/iudanet/scraperadmin/pkg/api"
)

// File kinds used to pick an icon or label for a download.
const (
	KindDocument    = "document"
	KindSpreadsheet = "spreadsheet"
	KindFile        = "file"
)

// Downloads is the downloads page.
type Downloads struct {
	cache *query.Cache
	gw    DownloadsGateway
	fs    afero.Fs
	list  *query.Query[[]api.DownloadItem]
}

// NewDownloads mounts the downloads list. Files are saved through fs.
func NewDownloads(cache *query.Cache, gw DownloadsGateway, fs afero.Fs) *Downloads {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Downloads{
		cache: cache,
		gw:    gw,
		fs:    fs,
		list:  query.Observe(cache, DownloadsKey, gw.List),
	}
}

// Load returns the list, fetching it if needed.
func (v *Downloads) Load(ctx context.Context) ([]api.DownloadItem, error) {
	return v.list.Result(ctx)
}

// State returns the current list state.
func (v *Downloads) State() query.State[[]api.DownloadItem] {
	return v.list.State()
}

// Close unmounts the page.
func (v *Downloads) Close() {
	v.list.Close()
}

// Save fetches the file content and writes it into dir under the item's
// file name. The file appears only after the whole body was written; on
// any error nothing is left behind. The list is refreshed afterwards since
// the server counts the download.
func (v *Downloads) Save(ctx context.Context, item api.DownloadItem, dir string) (string, error) {
	data, err := v.gw.Download(ctx, item.ID)
	if err != nil {
		return "", err
	}

	if err := v.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	target := filepath.Join(dir, safeFilename(item))
	if err := writeAtomic(v.fs, target, data); err != nil {
		return "", err
	}

	v.cache.Invalidate(DownloadsKey)
	return target, nil
}

func writeAtomic(fs afero.Fs, target string, data []byte) error {
	tmp, err := afero.TempFile(fs, filepath.Dir(target), "."+filepath.Base(target)+"-*.part")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func() { _ = fs.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := fs.Rename(tmpName, target); err != nil {
		cleanup()
		return fmt.Errorf("failed to move file into place: %w", err)
	}
	return nil
}

// safeFilename drops any directory part the server may have sent.
func safeFilename(item api.DownloadItem) string {
	name := filepath.Base(filepath.Clean("/" + strings.ReplaceAll(item.Filename, `\`, "/")))
	if name == "/" || name == "." || name == "" {
		return fmt.Sprintf("download-%d", item.ID)
	}
	return name
}

// FileKind classifies a MIME type or extension the way the file list shows it.
func FileKind(fileType string) string {
	switch {
	case strings.Contains(fileType, "pdf"):
		return KindDocument
	case strings.Contains(fileType, "excel"), strings.Contains(fileType, "csv"):
		return KindSpreadsheet
	default:
		return KindFile
	}
}

// DownloadRow is one rendered file card.
type DownloadRow struct {
	Filename  string
	FileType  string
	Kind      string
	Size      string
	Created   string
	Downloads string
	ID        int64
}

// NewDownloadRow derives the display fields of item.
func NewDownloadRow(item api.DownloadItem) DownloadRow {
	return DownloadRow{
		ID:        item.ID,
		Filename:  item.Filename,
		FileType:  item.FileType,
		Kind:      FileKind(item.FileType),
		Size:      FormatFileSize(item.FileSize),
		Created:   FormatDate(item.CreatedAt),
		Downloads: fmt.Sprintf("Downloaded %s times", FormatCount(item.DownloadCount)),
	}
}

// DownloadRows renders a list.
func DownloadRows(items []api.DownloadItem) []DownloadRow {
	rows := make([]DownloadRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, NewDownloadRow(item))
	}
	return rows
}
