package views

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iudanet/scraperadmin/internal/client/gateway"
	"github.com/iudanet/scraperadmin/internal/client/query"
	"github.com/iudanet/scraperadmin/pkg/api"
)

// Users is the users page: one page of the users list plus mutations.
type Users struct {
	cache *query.Cache
	gw    UsersGateway
	list  *query.Query[[]api.User]
}

// NewUsers mounts the users list for the given page.
func NewUsers(cache *query.Cache, gw UsersGateway, params gateway.ListParams) *Users {
	key := UsersKey.With(fmt.Sprintf("skip=%d", params.Skip), fmt.Sprintf("limit=%d", params.Limit))
	return &Users{
		cache: cache,
		gw:    gw,
		list: query.Observe(cache, key, func(ctx context.Context) ([]api.User, error) {
			return gw.List(ctx, params)
		}),
	}
}

// Load returns the list, fetching it if needed.
func (v *Users) Load(ctx context.Context) ([]api.User, error) {
	return v.list.Result(ctx)
}

// State returns the current list state.
func (v *Users) State() query.State[[]api.User] {
	return v.list.State()
}

// Get loads a single user through the cache.
func (v *Users) Get(ctx context.Context, id int64) (*api.User, error) {
	return GetUser(ctx, v.cache, v.gw, id)
}

// Create adds a user and refreshes every users key.
func (v *Users) Create(ctx context.Context, payload api.UserCreate) (*api.User, error) {
	return CreateUser(ctx, v.cache, v.gw, payload)
}

// Update changes a user and refreshes every users key.
func (v *Users) Update(ctx context.Context, id int64, payload api.UserUpdate) (*api.User, error) {
	return UpdateUser(ctx, v.cache, v.gw, id, payload)
}

// Delete removes a user. On success the next read of the list re-fetches;
// on failure the cached list is left as is.
func (v *Users) Delete(ctx context.Context, id int64) error {
	return DeleteUser(ctx, v.cache, v.gw, id)
}

// GetUser loads one user without mounting the list.
func GetUser(ctx context.Context, cache *query.Cache, gw UsersGateway, id int64) (*api.User, error) {
	q := query.Observe(cache, itemKey(UsersKey, id), func(ctx context.Context) (*api.User, error) {
		return gw.Get(ctx, id)
	})
	defer q.Close()
	return q.Result(ctx)
}

// CreateUser, UpdateUser and DeleteUser mutate without mounting the list:
// only lists someone has mounted are re-fetched after the change.
func CreateUser(ctx context.Context, cache *query.Cache, gw UsersGateway, payload api.UserCreate) (*api.User, error) {
	return query.Mutate(ctx, cache, func(ctx context.Context) (*api.User, error) {
		return gw.Create(ctx, payload)
	}, UsersKey)
}

func UpdateUser(ctx context.Context, cache *query.Cache, gw UsersGateway, id int64, payload api.UserUpdate) (*api.User, error) {
	return query.Mutate(ctx, cache, func(ctx context.Context) (*api.User, error) {
		return gw.Update(ctx, id, payload)
	}, UsersKey)
}

func DeleteUser(ctx context.Context, cache *query.Cache, gw UsersGateway, id int64) error {
	return query.Exec(ctx, cache, func(ctx context.Context) error {
		return gw.Delete(ctx, id)
	}, UsersKey)
}

// Close unmounts the page.
func (v *Users) Close() {
	v.list.Close()
}

// FilterUsers keeps users whose username, email or "first last" contains
// term, ignoring case. Order is preserved. Missing name parts count as empty.
func FilterUsers(users []api.User, term string) []api.User {
	term = strings.ToLower(term)
	out := make([]api.User, 0, len(users))
	for _, u := range users {
		fullName := deref(u.FirstName) + " " + deref(u.LastName)
		if strings.Contains(strings.ToLower(u.Username), term) ||
			strings.Contains(strings.ToLower(u.Email), term) ||
			strings.Contains(strings.ToLower(fullName), term) {
			out = append(out, u)
		}
	}
	return out
}

// UserRow is one rendered line of the users table.
type UserRow struct {
	Initial     string
	DisplayName string
	Email       string
	Status      string
	Role        string
	Created     string
	ID          int64
}

// NewUserRow derives the display fields of u.
func NewUserRow(u api.User) UserRow {
	row := UserRow{
		ID:          u.ID,
		Initial:     initial(u),
		DisplayName: u.Username,
		Email:       u.Email,
		Status:      "Inactive",
		Role:        "User",
		Created:     FormatDate(u.CreatedAt),
	}
	if first, last := deref(u.FirstName), deref(u.LastName); first != "" && last != "" {
		row.DisplayName = first + " " + last
	}
	if u.IsActive {
		row.Status = "Active"
	}
	if u.IsSuperuser {
		row.Role = "Admin"
	}
	return row
}

// UserRows renders a list.
func UserRows(users []api.User) []UserRow {
	rows := make([]UserRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, NewUserRow(u))
	}
	return rows
}

// initial: первая буква имени как есть, иначе первая буква username в верхнем регистре
func initial(u api.User) string {
	if first := deref(u.FirstName); first != "" {
		r, _ := utf8.DecodeRuneInString(first)
		return string(r)
	}
	if u.Username == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(u.Username)
	return string(unicode.ToUpper(r))
}
