package views

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/scraperadmin/internal/client/api"
	"github.com/iudanet/scraperadmin/internal/client/gateway"
	"github.com/iudanet/scraperadmin/pkg/api"
)

func sampleReports() []api.Report {
	return []api.Report{
		{ID: 1, Title: "A", Status: api.ReportStatusPending},
		{ID: 2, Title: "B", Status: api.ReportStatusCompleted, FileURL: strPtr("/files/b.pdf")},
		{ID: 3, Title: "C", Status: api.ReportStatusFailed},
	}
}

func TestFilterReports(t *testing.T) {
	reports := sampleReports()

	completed := FilterReports(reports, "completed")
	require.Len(t, completed, 1)
	assert.Equal(t, int64(2), completed[0].ID)

	assert.Equal(t, reports, FilterReports(reports, StatusAll))
	assert.Equal(t, reports, FilterReports(reports, ""))
	assert.Empty(t, FilterReports(reports, "processing"))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Completed", StatusLabel(api.ReportStatusCompleted))
	assert.Equal(t, "Pending", StatusLabel(api.ReportStatusPending))
	assert.Empty(t, StatusLabel(""))
}

func TestNewReportRow_DownloadOnlyWhenCompleted(t *testing.T) {
	created := time.Date(2026, 2, 1, 8, 0, 0, 0, time.Local)

	completed := NewReportRow(api.Report{ID: 1, Title: "Q1", Status: api.ReportStatusCompleted, FileURL: strPtr("/f/q1.pdf"), CreatedAt: created})
	assert.Equal(t, "/f/q1.pdf", completed.DownloadURL)
	assert.Equal(t, "Completed", completed.Status)
	assert.Equal(t, "2026-02-01", completed.Created)

	noFile := NewReportRow(api.Report{ID: 2, Status: api.ReportStatusCompleted})
	assert.Empty(t, noFile.DownloadURL)

	// file_url без completed не показываем
	pending := NewReportRow(api.Report{ID: 3, Status: api.ReportStatusPending, FileURL: strPtr("/f/x.pdf"), Description: strPtr("draft")})
	assert.Empty(t, pending.DownloadURL)
	assert.Equal(t, "draft", pending.Description)

	assert.Len(t, ReportRows(sampleReports()), 3)
}

// reportsServer is a tiny in-memory /v1/reports/ backend.
func reportsServer(t *testing.T, lists *atomic.Int32) *httptest.Server {
	t.Helper()
	reports := sampleReports()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/reports/", func(w http.ResponseWriter, r *http.Request) {
		lists.Add(1)
		_ = json.NewEncoder(w).Encode(reports)
	})
	mux.HandleFunc("GET /v1/reports/{id}", func(w http.ResponseWriter, r *http.Request) {
		for _, rep := range reports {
			if r.PathValue("id") == "2" && rep.ID == 2 {
				_ = json.NewEncoder(w).Encode(rep)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Report not found"}`))
	})
	mux.HandleFunc("POST /v1/reports/", func(w http.ResponseWriter, r *http.Request) {
		var req api.ReportCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		rep := api.Report{ID: int64(len(reports) + 1), Title: req.Title, Status: api.ReportStatusPending}
		reports = append(reports, rep)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(rep)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestReports_LoadAndCreate(t *testing.T) {
	ctx := context.Background()
	var lists atomic.Int32
	server := reportsServer(t, &lists)

	cache := newCache()
	v := NewReports(cache, gateway.NewReports(httpClient.NewClient(server.URL)))
	defer v.Close()

	reports, err := v.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, reports, 3)

	created, err := v.Create(ctx, api.ReportCreate{Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, api.ReportStatusPending, created.Status)
	cache.Wait()

	reports, err = v.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, reports, 4)
	assert.Equal(t, int32(2), lists.Load())
}

func TestReports_Get(t *testing.T) {
	var lists atomic.Int32
	server := reportsServer(t, &lists)
	v := NewReports(newCache(), gateway.NewReports(httpClient.NewClient(server.URL)))
	defer v.Close()

	rep, err := v.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "B", rep.Title)

	_, err = v.Get(context.Background(), 99)
	assert.True(t, httpClient.IsNotFound(err))
}
