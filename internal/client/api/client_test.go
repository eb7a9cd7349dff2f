package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/scraperadmin/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8000/api"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.BaseURL())
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 10*time.Second, client.httpClient.Timeout)
	assert.Empty(t, client.interceptors)
}

func TestNewClient_Options(t *testing.T) {
	hc := &http.Client{Timeout: time.Second}
	client := NewClient("http://x", WithHTTPClient(hc), WithTimeout(3*time.Second),
		WithInterceptors(RequestIDInterceptor()))

	assert.Same(t, hc, client.httpClient)
	assert.Equal(t, 3*time.Second, hc.Timeout)
	require.Len(t, client.interceptors, 1)
	assert.Equal(t, "request_id", client.interceptors[0].Name)
}

func TestClient_Get_DecodesJSONWithQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/users/", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("skip"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		_ = json.NewEncoder(w).Encode([]api.User{{ID: 1, Username: "ann"}})
	}))
	defer server.Close()

	client := NewClient(server.URL + "/api")

	var users []api.User
	resp, err := client.Get(context.Background(), "/v1/users/", &RequestOptions{
		Query: url.Values{"skip": {"0"}, "limit": {"100"}},
	}, &users)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, users, 1)
	assert.Equal(t, "ann", users[0].Username)
}

func TestClient_Post_SendsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req api.ReportCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Weekly", req.Title)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.Report{ID: 9, Title: req.Title, Status: api.ReportStatusPending})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var report api.Report
	resp, err := client.Post(context.Background(), "/v1/reports/", &RequestOptions{
		Body: api.ReportCreate{Title: "Weekly"},
	}, &report)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, int64(9), report.ID)
	assert.Equal(t, api.ReportStatusPending, report.Status)
}

func TestClient_PutAndDelete(t *testing.T) {
	var methods []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte(`{"id":3}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	var user api.User
	_, err := client.Put(ctx, "/v1/users/3", &RequestOptions{Body: api.UserUpdate{}}, &user)
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)

	resp, err := client.Delete(ctx, "/v1/users/3", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	assert.Equal(t, []string{http.MethodPut, http.MethodDelete}, methods)
}

func TestClient_BinaryResponse(t *testing.T) {
	payload := []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xff}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Get(context.Background(), "/v1/downloads/1", &RequestOptions{
		ResponseType: ResponseBinary,
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, payload, resp.Body)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

// TestClient_ErrorKinds проверяет классификацию ошибок по статусу
func TestClient_ErrorKinds(t *testing.T) {
	tests := []struct {
		body           any
		name           string
		expectedErrMsg string
		statusCode     int
		kind           Kind
	}{
		{
			name:           "Unauthorized",
			statusCode:     http.StatusUnauthorized,
			body:           api.ErrorResponse{Detail: "Could not validate credentials"},
			expectedErrMsg: "server error (401): Could not validate credentials",
			kind:           KindUnauthorized,
		},
		{
			name:           "Not found",
			statusCode:     http.StatusNotFound,
			body:           api.ErrorResponse{Detail: "Report not found"},
			expectedErrMsg: "server error (404): Report not found",
			kind:           KindNotFound,
		},
		{
			name:           "Conflict",
			statusCode:     http.StatusConflict,
			body:           api.ErrorResponse{Error: "user already exists"},
			expectedErrMsg: "server error (409): user already exists",
			kind:           KindClient,
		},
		{
			name:           "Internal server error",
			statusCode:     http.StatusInternalServerError,
			body:           "Internal Server Error",
			expectedErrMsg: "request failed with status 500",
			kind:           KindServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if errResp, ok := tt.body.(api.ErrorResponse); ok {
					_ = json.NewEncoder(w).Encode(errResp)
				} else {
					_, _ = w.Write([]byte(tt.body.(string)))
				}
			}))
			defer server.Close()

			client := NewClient(server.URL)
			resp, err := client.Get(context.Background(), "/x", nil, nil)

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
			assert.Equal(t, tt.kind, KindOf(err))

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	client := NewClient(addr)
	_, err := client.Get(context.Background(), "/health", nil, nil)

	require.Error(t, err)
	assert.Equal(t, KindNetwork, KindOf(err))
	assert.Contains(t, err.Error(), "request failed")
}

func TestClient_Timeout_IsNetworkError(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(server.URL, WithTimeout(50*time.Millisecond))
	_, err := client.Get(context.Background(), "/slow", nil, nil)

	require.Error(t, err)
	assert.Equal(t, KindNetwork, KindOf(err))
	assert.True(t, IsTimeout(err))
}

func TestClient_SingleAttempt(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Get(context.Background(), "/v1/reports/", nil, nil)

	require.Error(t, err)
	assert.Equal(t, 1, hits)
}

func TestClient_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	var out []api.User
	_, err := client.Get(context.Background(), "/v1/users/", nil, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestClient_MarshalError(t *testing.T) {
	client := NewClient("http://localhost")
	_, err := client.Post(context.Background(), "/x", &RequestOptions{Body: make(chan int)}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal request body")
}

func TestIsNotFoundAndUnauthorized(t *testing.T) {
	assert.True(t, IsNotFound(&Error{Kind: KindNotFound}))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.True(t, IsUnauthorized(&Error{Kind: KindUnauthorized}))
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, "not_found", KindNotFound.String())
}

func bearerInterceptor(token string) Interceptor {
	return Interceptor{
		Name: "bearer",
		OnRequest: func(req *http.Request) (*http.Request, error) {
			req.Header.Set("Authorization", "Bearer "+token)
			return nil, nil
		},
	}
}

func TestClient_Redirect_SameHostKeepsAuthorization(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/v1/new", http.StatusFound)
	})
	mux.HandleFunc("/api/v1/new", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL+"/api", WithInterceptors(bearerInterceptor("SECRET")))

	_, err := client.Get(context.Background(), "/v1/old", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer SECRET", gotAuth)
}

// Токен не должен уходить на другой хост при редиректе
func TestClient_Redirect_OtherHostDropsAuthorization(t *testing.T) {
	var gotAuth string
	reached := false
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer other.Close()

	otherURL, err := url.Parse(other.URL)
	require.NoError(t, err)
	// тот же сервер, но под другим именем хоста
	target := "http://localhost:" + otherURL.Port() + "/landing"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusFound)
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api", WithInterceptors(bearerInterceptor("SECRET")))

	_, err = client.Get(context.Background(), "/v1/users/", nil, nil)
	require.NoError(t, err)
	require.True(t, reached)
	assert.Empty(t, gotAuth)
}

func TestClient_Redirect_Limit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, r.URL.Path, http.StatusFound)
	}))
	defer server.Close()

	client := NewClient(server.URL + "/api")

	_, err := client.Get(context.Background(), "/v1/loop", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stopped after 10 redirects")
}
