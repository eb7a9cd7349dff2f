package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/scraperadmin/pkg/api"
)

// DefaultTimeout bounds every request issued by the client.
const DefaultTimeout = 10 * time.Second

const maxRedirects = 10

// ResponseType selects how a successful response body is handed back.
type ResponseType int

const (
	// ResponseJSON decodes the body into the result argument.
	ResponseJSON ResponseType = iota
	// ResponseBinary leaves the raw body in Response.Body.
	ResponseBinary
)

// RequestOptions carries optional parts of a request.
type RequestOptions struct {
	Query        url.Values
	Body         any
	ResponseType ResponseType
}

// Response is what the caller gets back from a successful round trip.
type Response struct {
	Header     http.Header
	Body       []byte
	StatusCode int
}

// Client представляет HTTP клиент для взаимодействия с REST API
type Client struct {
	httpClient   *http.Client
	baseURL      string
	interceptors []Interceptor
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient replaces the underlying http.Client. Its Timeout is kept as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithInterceptors appends interceptors to the pipeline in the given order.
func WithInterceptors(in ...Interceptor) Option {
	return func(c *Client) { c.interceptors = append(c.interceptors, in...) }
}

// NewClient создает новый API клиент
// baseURL is the API root, e.g. "http://localhost:8000/api".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// Authorization переносит сам net/http, и только на тот же хост
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, opts *RequestOptions, result any) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, opts, result)
}

// Post issues a POST request.
func (c *Client) Post(ctx context.Context, path string, opts *RequestOptions, result any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, opts, result)
}

// Put issues a PUT request.
func (c *Client) Put(ctx context.Context, path string, opts *RequestOptions, result any) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, opts, result)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts *RequestOptions, result any) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, opts, result)
}

// Do выполняет один HTTP запрос через цепочку interceptors.
// Request hooks run in registration order and the first error aborts dispatch.
// Response hooks run in reverse order; each sees the error produced so far.
// There is no retry: every call is exactly one attempt.
func (c *Client) Do(ctx context.Context, method, path string, opts *RequestOptions, result any) (*Response, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}

	req, err := c.newRequest(ctx, method, path, opts)
	if err != nil {
		return nil, err
	}

	for _, in := range c.interceptors {
		if in.OnRequest == nil {
			continue
		}
		next, err := in.OnRequest(req)
		if err != nil {
			return nil, fmt.Errorf("%s interceptor: %w", in.Name, err)
		}
		if next != nil {
			req = next
		}
	}

	httpResp, resp, err := c.dispatch(req, opts, result)

	for i := len(c.interceptors) - 1; i >= 0; i-- {
		if hook := c.interceptors[i].OnResponse; hook != nil {
			err = hook(req, httpResp, err)
		}
	}

	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, opts *RequestOptions) (*http.Request, error) {
	target := c.baseURL + path
	if len(opts.Query) > 0 {
		target += "?" + opts.Query.Encode()
	}

	var bodyReader io.Reader
	if opts.Body != nil {
		jsonData, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

// dispatch отправляет запрос и классифицирует ответ.
// The raw *http.Response (body already drained) is returned for response hooks.
func (c *Client) dispatch(req *http.Request, opts *RequestOptions, result any) (*http.Response, *Response, error) {
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, &Error{
			Kind:   KindNetwork,
			Method: req.Method,
			Path:   req.URL.Path,
			Err:    err,
		}
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return httpResp, nil, &Error{
			Kind:   KindNetwork,
			Method: req.Method,
			Path:   req.URL.Path,
			Err:    fmt.Errorf("failed to read response body: %w", err),
		}
	}

	// Проверяем статус код
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		apiErr := &Error{
			Kind:       kindForStatus(httpResp.StatusCode),
			StatusCode: httpResp.StatusCode,
			Method:     req.Method,
			Path:       req.URL.Path,
		}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			apiErr.Message = errResp.Text()
		}
		return httpResp, nil, apiErr
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       respBody,
	}

	// Декодируем успешный ответ
	if opts.ResponseType == ResponseJSON && result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return httpResp, nil, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return httpResp, resp, nil
}

// IsTimeout reports whether err came from the client timeout or a context deadline.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}
