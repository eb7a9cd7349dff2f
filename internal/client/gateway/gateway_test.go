package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/scraperadmin/internal/client/api"
	"github.com/iudanet/scraperadmin/pkg/api"
)

// okRequester отвечает успехом и декодирует body в result
func okRequester(body string) *RequesterMock {
	return &RequesterMock{
		DoFunc: func(ctx context.Context, method, path string, opts *httpClient.RequestOptions, result any) (*httpClient.Response, error) {
			if result != nil && body != "" {
				if err := json.Unmarshal([]byte(body), result); err != nil {
					return nil, err
				}
			}
			return &httpClient.Response{StatusCode: http.StatusOK, Body: []byte(body)}, nil
		},
	}
}

func TestUsers_List_PassesPagination(t *testing.T) {
	r := okRequester(`[{"id":1,"username":"ann","email":"a@x.com"}]`)
	users, err := NewUsers(r).List(context.Background(), ListParams{Skip: 20, Limit: 10})

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ann", users[0].Username)

	calls := r.DoCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodGet, calls[0].Method)
	assert.Equal(t, "/v1/users/", calls[0].Path)
	assert.Equal(t, "20", calls[0].Opts.Query.Get("skip"))
	assert.Equal(t, "10", calls[0].Opts.Query.Get("limit"))
}

func TestDefaultListParams(t *testing.T) {
	assert.Equal(t, ListParams{Skip: 0, Limit: 100}, DefaultListParams())
}

func TestUsers_CRUDRoutes(t *testing.T) {
	ctx := context.Background()
	r := okRequester(`{"id":5,"username":"bob"}`)
	users := NewUsers(r)

	_, err := users.Get(ctx, 5)
	require.NoError(t, err)

	created, err := users.Create(ctx, api.UserCreate{Username: "bob", Email: "b@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)

	name := "Bobby"
	_, err = users.Update(ctx, 5, api.UserUpdate{FirstName: &name})
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, 5))

	calls := r.DoCalls()
	require.Len(t, calls, 4)

	assert.Equal(t, http.MethodGet, calls[0].Method)
	assert.Equal(t, "/v1/users/5", calls[0].Path)

	assert.Equal(t, http.MethodPost, calls[1].Method)
	assert.Equal(t, "/v1/users/", calls[1].Path)
	assert.Equal(t, api.UserCreate{Username: "bob", Email: "b@x.com", Password: "pw"}, calls[1].Opts.Body)

	assert.Equal(t, http.MethodPut, calls[2].Method)
	assert.Equal(t, "/v1/users/5", calls[2].Path)

	assert.Equal(t, http.MethodDelete, calls[3].Method)
	assert.Equal(t, "/v1/users/5", calls[3].Path)
	assert.Nil(t, calls[3].Result)
}

func TestUsers_Get_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Detail: "User not found"})
	}))
	defer server.Close()

	user, err := NewUsers(httpClient.NewClient(server.URL)).Get(context.Background(), 404)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, httpClient.IsNotFound(err))
	assert.Contains(t, err.Error(), "get user 404")
}

func TestReports_Routes(t *testing.T) {
	ctx := context.Background()
	r := okRequester(`[]`)
	reports := NewReports(r)

	list, err := reports.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	r.DoFunc = okRequester(`{"id":2,"title":"Q1","status":"processing"}`).DoFunc
	report, err := reports.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, api.ReportStatusProcessing, report.Status)

	_, err = reports.Create(ctx, api.ReportCreate{Title: "Q2"})
	require.NoError(t, err)

	calls := r.DoCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, "/v1/reports/", calls[0].Path)
	assert.Equal(t, "/v1/reports/2", calls[1].Path)
	assert.Equal(t, http.MethodPost, calls[2].Method)
	assert.Equal(t, "/v1/reports/", calls[2].Path)
}

func TestDownloads_Download_Binary(t *testing.T) {
	payload := []byte("col1,col2\n1,2\n")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/downloads/3", r.URL.Path)
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	data, err := NewDownloads(httpClient.NewClient(server.URL+"/api")).Download(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestDownloads_List(t *testing.T) {
	r := okRequester(`[{"id":1,"filename":"a.csv","file_type":"text/csv","file_size":1536,"download_count":4}]`)
	items, err := NewDownloads(r).List(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1536), items[0].FileSize)
	assert.Equal(t, "/v1/downloads/", r.DoCalls()[0].Path)
}

func TestHealth_Check(t *testing.T) {
	r := okRequester(`{"status":"healthy"}`)
	resp, err := NewHealth(r).Check(context.Background())

	require.NoError(t, err)
	assert.Equal(t, api.HealthStatusHealthy, resp.Status)
	assert.Equal(t, "/health", r.DoCalls()[0].Path)
}

func TestAuth_Login(t *testing.T) {
	r := okRequester(`{"access_token":"abc","token_type":"bearer"}`)
	resp, err := NewAuth(r).Login(context.Background(), api.LoginRequest{Username: "admin", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "abc", resp.AccessToken)
	assert.Equal(t, http.MethodPost, r.DoCalls()[0].Method)
	assert.Equal(t, "/v1/auth/login", r.DoCalls()[0].Path)
}

func TestGateway_WrapsErrors(t *testing.T) {
	boom := errors.New("boom")
	r := &RequesterMock{
		DoFunc: func(ctx context.Context, method, path string, opts *httpClient.RequestOptions, result any) (*httpClient.Response, error) {
			return nil, boom
		},
	}

	_, err := NewReports(r).List(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "list reports")

	_, err = NewDownloads(r).Download(context.Background(), 1)
	assert.ErrorIs(t, err, boom)

	err = NewUsers(r).Delete(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, r.DoCalls(), 3)
}
