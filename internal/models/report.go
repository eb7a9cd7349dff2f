package models

import "time"

// Report представляет сгенерированный отчет.
// Статус меняет только сервер: pending -> processing -> completed.
type Report struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Description *string   `json:"description"`
	FileURL     *string   `json:"file_url"` // заполняется только для completed
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	ID          int64     `json:"id"`
}
