package api

import "time"

// DownloadItem describes a file available for download.
// DownloadCount only grows; the client never writes it.
type DownloadItem struct {
	CreatedAt     time.Time `json:"created_at"`
	Filename      string    `json:"filename"`
	FileType      string    `json:"file_type"`
	URL           string    `json:"url"`
	ID            int64     `json:"id"`
	FileSize      int64     `json:"file_size"`
	DownloadCount int64     `json:"download_count"`
}
