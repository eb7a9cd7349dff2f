package handlers

import (
	"errors"
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"

	"github.com/iudanet/scraperadmin/internal/models"
	"github.com/iudanet/scraperadmin/internal/server/storage"
	"github.com/iudanet/scraperadmin/pkg/api"
)

const defaultContentType = "application/octet-stream"

// типы выгрузок скрапера, которых может не быть в системной mime-таблице
var exportContentTypes = map[string]string{
	".csv":  "text/csv; charset=utf-8",
	".tsv":  "text/tab-separated-values; charset=utf-8",
	".txt":  "text/plain; charset=utf-8",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// DownloadCreate is the body of POST /api/v1/downloads/.
// FilePath must point to an existing file in the server file store.
type DownloadCreate struct {
	FileSize    *int64 `json:"file_size,omitempty"`
	Filename    string `json:"filename"`
	FilePath    string `json:"file_path"`
	ContentType string `json:"content_type,omitempty"`
}

// DownloadsHandler обрабатывает список и скачивание файлов
type DownloadsHandler struct {
	logger          *slog.Logger
	downloadStorage storage.DownloadStorage
	files           afero.Fs
	now             func() time.Time
}

// NewDownloadsHandler создает handler файлов; files это корень файлового хранилища
func NewDownloadsHandler(logger *slog.Logger, downloadStorage storage.DownloadStorage, files afero.Fs) *DownloadsHandler {
	return &DownloadsHandler{
		logger:          logger,
		downloadStorage: downloadStorage,
		files:           files,
		now:             time.Now,
	}
}

// List обрабатывает GET /api/v1/downloads/
func (h *DownloadsHandler) List(c echo.Context) error {
	skip, limit, err := pagination(c)
	if err != nil {
		return err
	}

	downloads, err := h.downloadStorage.ListDownloads(c.Request().Context(), skip, limit)
	if err != nil {
		return internalError(err)
	}

	resp := make([]api.DownloadItem, 0, len(downloads))
	for _, d := range downloads {
		resp = append(resp, toAPIDownload(d))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create обрабатывает POST /api/v1/downloads/
// Регистрирует уже лежащий в хранилище файл
func (h *DownloadsHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req DownloadCreate
	if err := c.Bind(&req); err != nil {
		return unprocessable("invalid request body")
	}
	if req.Filename == "" || req.FilePath == "" {
		return unprocessable("filename and file_path are required")
	}

	filePath, ok := cleanFilePath(req.FilePath)
	if !ok {
		return unprocessable("file_path must be relative to the file store")
	}

	info, err := h.files.Stat(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return unprocessable("file_path does not exist")
		}
		return internalError(err)
	}

	download := &models.Download{
		Filename:    req.Filename,
		FilePath:    filePath,
		FileSize:    info.Size(),
		ContentType: req.ContentType,
		CreatedAt:   h.now().UTC(),
	}
	if req.FileSize != nil {
		download.FileSize = *req.FileSize
	}
	if download.ContentType == "" {
		download.ContentType = ContentTypeFor(req.Filename)
	}

	if err := h.downloadStorage.CreateDownload(ctx, download); err != nil {
		return internalError(err)
	}

	h.logger.InfoContext(ctx, "download registered", slog.Int64("download_id", download.ID), slog.String("file", filePath))
	return c.JSON(http.StatusCreated, toAPIDownload(download))
}

// Download обрабатывает GET /api/v1/downloads/:id
// Отдает содержимое файла и увеличивает счетчик скачиваний
func (h *DownloadsHandler) Download(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return err
	}

	download, err := h.downloadStorage.GetDownload(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrDownloadNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Download not found")
		}
		return internalError(err)
	}

	content, err := afero.ReadFile(h.files, download.FilePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return echo.NewHTTPError(http.StatusNotFound, "File not found")
		}
		return internalError(err)
	}

	// счетчик растет только когда файл реально найден
	if err := h.downloadStorage.IncrementDownloadCount(ctx, id); err != nil {
		return internalError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": download.Filename}))
	return c.Blob(http.StatusOK, download.ContentType, content)
}

// ContentTypeFor guesses the MIME type from the file extension.
func ContentTypeFor(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ct, ok := exportContentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return defaultContentType
}

// cleanFilePath отклоняет абсолютные пути и выход за корень хранилища
func cleanFilePath(p string) (string, bool) {
	cleaned := path.Clean("/" + strings.TrimSpace(p))[1:]
	if cleaned == "" || strings.HasPrefix(p, "/") || strings.Contains(p, "..") {
		return "", false
	}
	return cleaned, true
}
