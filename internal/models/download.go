package models

import "time"

// Download представляет файл, доступный для скачивания.
// Содержимое лежит в файловом хранилище по FilePath.
type Download struct {
	CreatedAt     time.Time `json:"created_at"`
	Filename      string    `json:"filename"`
	FilePath      string    `json:"file_path"`    // путь относительно корня хранилища файлов
	ContentType   string    `json:"content_type"` // MIME тип
	ID            int64     `json:"id"`
	FileSize      int64     `json:"file_size"`
	DownloadCount int64     `json:"download_count"` // растет при каждом скачивании
}
