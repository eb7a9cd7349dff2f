package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/scraperadmin/internal/client/views"
	"github.com/iudanet/scraperadmin/pkg/api"
)

func (c *Cli) runDownloadsList(ctx context.Context) error {
	v := views.NewDownloads(c.cache, c.downloads, c.fs)
	defer v.Close()

	items, err := v.Load(ctx)
	if err != nil {
		return c.loadFailed("downloads", err)
	}

	c.io.Println("=== Downloads ===")
	c.io.Println()

	if len(items) == 0 {
		c.io.Println("No downloads available")
		return nil
	}

	rows := make([][]string, 0, len(items))
	for _, row := range views.DownloadRows(items) {
		rows = append(rows, []string{
			strconv.FormatInt(row.ID, 10),
			row.Filename,
			row.Kind,
			row.FileType,
			row.Size,
			row.Created,
			row.Downloads,
		})
	}
	return table(c.io, []string{"ID", "FILE", "KIND", "TYPE", "SIZE", "CREATED", "COUNT"}, rows)
}

func (c *Cli) runDownloadsGet(ctx context.Context, id int64, dir string) error {
	if dir == "" {
		dir = c.cfg.DownloadDir
	}

	v := views.NewDownloads(c.cache, c.downloads, c.fs)
	defer v.Close()

	items, err := v.Load(ctx)
	if err != nil {
		return c.loadFailed("downloads", err)
	}

	for _, item := range items {
		if item.ID != id {
			continue
		}
		path, err := v.Save(ctx, item, dir)
		if err != nil {
			c.logger.Warn("download failed", "id", id, "error", err)
			return fmt.Errorf("download failed: %w", err)
		}
		c.io.Printf("✓ Saved %s (%s)\n", path, views.FormatFileSize(item.FileSize))
		return nil
	}

	// список отдает только первую страницу, файл берем напрямую по ID
	c.logger.Debug("download not in listed page, fetching by id", "id", id)
	path, err := v.Save(ctx, api.DownloadItem{ID: id}, dir)
	if err != nil {
		c.logger.Warn("download failed", "id", id, "error", err)
		return fmt.Errorf("download %d failed: %w", id, err)
	}
	c.io.Printf("✓ Saved %s\n", path)
	return nil
}
