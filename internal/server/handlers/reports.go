package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iudanet/scraperadmin/internal/models"
	"github.com/iudanet/scraperadmin/internal/server/storage"
	"github.com/iudanet/scraperadmin/pkg/api"
)

// ReportsHandler обрабатывает запросы отчетов
type ReportsHandler struct {
	logger        *slog.Logger
	reportStorage storage.ReportStorage
	now           func() time.Time
}

// NewReportsHandler создает handler отчетов
func NewReportsHandler(logger *slog.Logger, reportStorage storage.ReportStorage) *ReportsHandler {
	return &ReportsHandler{
		logger:        logger,
		reportStorage: reportStorage,
		now:           time.Now,
	}
}

// List обрабатывает GET /api/v1/reports/
func (h *ReportsHandler) List(c echo.Context) error {
	skip, limit, err := pagination(c)
	if err != nil {
		return err
	}

	reports, err := h.reportStorage.ListReports(c.Request().Context(), skip, limit)
	if err != nil {
		return internalError(err)
	}

	resp := make([]api.Report, 0, len(reports))
	for _, r := range reports {
		resp = append(resp, toAPIReport(r))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get обрабатывает GET /api/v1/reports/:id
func (h *ReportsHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	report, err := h.reportStorage.GetReport(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrReportNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Report not found")
		}
		return internalError(err)
	}
	return c.JSON(http.StatusOK, toAPIReport(report))
}

// Create обрабатывает POST /api/v1/reports/
// Без status отчет создается в pending и дальше его ведет воркер
func (h *ReportsHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req api.ReportCreate
	if err := c.Bind(&req); err != nil {
		return unprocessable("invalid request body")
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return unprocessable("title is required")
	}
	if req.Status == "" {
		req.Status = api.ReportStatusPending
	}
	if !req.Status.Valid() {
		return unprocessable("status must be one of pending, processing, completed, failed")
	}

	now := h.now().UTC()
	report := &models.Report{
		Title:       req.Title,
		Description: req.Description,
		Status:      string(req.Status),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.reportStorage.CreateReport(ctx, report); err != nil {
		return internalError(err)
	}

	h.logger.InfoContext(ctx, "report created", slog.Int64("report_id", report.ID), slog.String("status", report.Status))
	return c.JSON(http.StatusCreated, toAPIReport(report))
}
