package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	httpClient "github.com/iudanet/scraperadmin/internal/client/api"
	"github.com/iudanet/scraperadmin/pkg/api"
)

// Default pagination of the users list.
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// ListParams is passed through to the server as ?skip=&limit=.
type ListParams struct {
	Skip  int
	Limit int
}

// DefaultListParams returns skip=0, limit=100.
func DefaultListParams() ListParams {
	return ListParams{Skip: DefaultSkip, Limit: DefaultLimit}
}

// Users is the gateway for /v1/users/.
type Users struct {
	r Requester
}

// NewUsers creates a users gateway.
func NewUsers(r Requester) *Users {
	return &Users{r: r}
}

// List fetches one page of users.
func (g *Users) List(ctx context.Context, params ListParams) ([]api.User, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(params.Skip))
	query.Set("limit", strconv.Itoa(params.Limit))

	var users []api.User
	if _, err := g.r.Do(ctx, http.MethodGet, "/v1/users/", &httpClient.RequestOptions{Query: query}, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get fetches a single user. A 404 is reported as a NotFound-kind error.
func (g *Users) Get(ctx context.Context, id int64) (*api.User, error) {
	var user api.User
	if _, err := g.r.Do(ctx, http.MethodGet, userPath(id), nil, &user); err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

// Create posts a new user.
func (g *Users) Create(ctx context.Context, payload api.UserCreate) (*api.User, error) {
	var user api.User
	if _, err := g.r.Do(ctx, http.MethodPost, "/v1/users/", &httpClient.RequestOptions{Body: payload}, &user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// Update replaces the given fields of a user.
func (g *Users) Update(ctx context.Context, id int64, payload api.UserUpdate) (*api.User, error) {
	var user api.User
	if _, err := g.r.Do(ctx, http.MethodPut, userPath(id), &httpClient.RequestOptions{Body: payload}, &user); err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return &user, nil
}

// Delete removes a user. Invalidating cached lists is the caller's job.
func (g *Users) Delete(ctx context.Context, id int64) error {
	if _, err := g.r.Do(ctx, http.MethodDelete, userPath(id), nil, nil); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

func userPath(id int64) string {
	return "/v1/users/" + strconv.FormatInt(id, 10)
}
