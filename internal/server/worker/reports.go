// Package worker advances generated reports through their lifecycle.
package worker

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"path"
	"strconv"
	"time"

	"github.com/spf13/afero"

	"github.com/iudanet/scraperadmin/internal/models"
	"github.com/iudanet/scraperadmin/internal/server/handlers"
	"github.com/iudanet/scraperadmin/internal/server/storage"
	"github.com/iudanet/scraperadmin/pkg/api"
)

// ReportsDir is the file store directory for rendered reports.
const ReportsDir = "reports"

// ReportStore is the part of storage the processor needs.
type ReportStore interface {
	storage.ReportStorage
	storage.DownloadStorage
}

// ReportProcessor moves reports pending -> processing -> completed.
// A completed report gets a CSV file registered as a download, and
// its file_url points at that download.
type ReportProcessor struct {
	store  ReportStore
	files  afero.Fs
	logger *slog.Logger
	now    func() time.Time
	step   time.Duration
}

// NewReportProcessor creates a processor that advances reports every step.
func NewReportProcessor(store ReportStore, files afero.Fs, logger *slog.Logger, step time.Duration) *ReportProcessor {
	return &ReportProcessor{
		store:  store,
		files:  files,
		logger: logger,
		now:    time.Now,
		step:   step,
	}
}

// Run advances reports until ctx is done. A non-positive step disables it.
func (p *ReportProcessor) Run(ctx context.Context) {
	if p.step <= 0 {
		return
	}

	ticker := time.NewTicker(p.step)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.Advance(ctx); err != nil {
				p.logger.Error("report processing failed", "error", err)
			}
		}
	}
}

// Advance performs one step: processing reports complete, then pending ones
// start processing. Each report therefore needs two steps to complete.
func (p *ReportProcessor) Advance(ctx context.Context) error {
	processing, err := p.store.ListReportsByStatus(ctx, string(api.ReportStatusProcessing))
	if err != nil {
		return fmt.Errorf("list processing reports: %w", err)
	}
	for _, report := range processing {
		p.complete(ctx, report)
	}

	pending, err := p.store.ListReportsByStatus(ctx, string(api.ReportStatusPending))
	if err != nil {
		return fmt.Errorf("list pending reports: %w", err)
	}
	for _, report := range pending {
		if err := p.store.SetReportStatus(ctx, report.ID, string(api.ReportStatusProcessing), nil, p.now().UTC()); err != nil {
			return fmt.Errorf("start report %d: %w", report.ID, err)
		}
		p.logger.Debug("report processing", "report_id", report.ID)
	}

	return nil
}

// complete renders the report file; any failure marks the report failed
func (p *ReportProcessor) complete(ctx context.Context, report *models.Report) {
	url, err := p.render(ctx, report)
	status := api.ReportStatusCompleted
	if err != nil {
		p.logger.Error("report rendering failed", "report_id", report.ID, "error", err)
		status, url = api.ReportStatusFailed, nil
	}

	if err := p.store.SetReportStatus(ctx, report.ID, string(status), url, p.now().UTC()); err != nil {
		p.logger.Error("failed to finish report", "report_id", report.ID, "error", err)
		return
	}
	p.logger.Info("report finished", "report_id", report.ID, "status", status)
}

func (p *ReportProcessor) render(ctx context.Context, report *models.Report) (*string, error) {
	filename := "report-" + strconv.FormatInt(report.ID, 10) + ".csv"
	filePath := path.Join(ReportsDir, filename)
	content, err := reportCSV(report, p.now().UTC())
	if err != nil {
		return nil, err
	}

	if err := p.files.MkdirAll(ReportsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create reports dir: %w", err)
	}
	if err := afero.WriteFile(p.files, filePath, content, 0o644); err != nil {
		return nil, fmt.Errorf("write report file: %w", err)
	}

	download := &models.Download{
		Filename:    filename,
		FilePath:    filePath,
		FileSize:    int64(len(content)),
		ContentType: handlers.ContentTypeFor(filename),
		CreatedAt:   p.now().UTC(),
	}
	if err := p.store.CreateDownload(ctx, download); err != nil {
		return nil, fmt.Errorf("register report download: %w", err)
	}

	url := handlers.DownloadURL(download.ID)
	return &url, nil
}

func reportCSV(report *models.Report, generated time.Time) ([]byte, error) {
	description := ""
	if report.Description != nil {
		description = *report.Description
	}

	var b bytes.Buffer
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"id", "title", "description", "created_at", "generated_at"})
	_ = w.Write([]string{
		strconv.FormatInt(report.ID, 10),
		report.Title,
		description,
		report.CreatedAt.Format(time.RFC3339),
		generated.Format(time.RFC3339),
	})
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}
	return b.Bytes(), nil
}
