package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/iudanet/scraperadmin/internal/client/gateway"
	"github.com/iudanet/scraperadmin/internal/client/views"
	"github.com/iudanet/scraperadmin/pkg/api"
)

type usersListOptions struct {
	Search string
	Params gateway.ListParams
}

func (c *Cli) runUsersList(ctx context.Context, opts usersListOptions) error {
	v := views.NewUsers(c.cache, c.users, opts.Params)
	defer v.Close()

	users, err := v.Load(ctx)
	if err != nil {
		return c.loadFailed("users", err)
	}

	c.io.Println("=== Users ===")
	c.io.Println()

	users = views.FilterUsers(users, opts.Search)
	if len(users) == 0 {
		c.io.Println("No users found.")
		return nil
	}

	rows := make([][]string, 0, len(users))
	for _, row := range views.UserRows(users) {
		rows = append(rows, []string{
			strconv.FormatInt(row.ID, 10),
			row.Initial,
			row.DisplayName,
			row.Email,
			row.Status,
			row.Role,
			row.Created,
		})
	}

	c.io.Printf("Found %d user(s):\n\n", len(users))
	return table(c.io, []string{"ID", "", "USER", "EMAIL", "STATUS", "ROLE", "CREATED"}, rows)
}

type userView struct {
	views.UserRow
	Username string
}

func (c *Cli) runUsersGet(ctx context.Context, id int64) error {
	user, err := views.GetUser(ctx, c.cache, c.users, id)
	if err != nil {
		return c.loadFailed("user", err)
	}
	return render(c.io, "user", userTemplate, userView{UserRow: views.NewUserRow(*user), Username: user.Username})
}

// userFields are the editable user fields shared by create and update.
type userFields struct {
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PasswordFile string
	Active       bool
	Superuser    bool
	SetActive    bool
	SetSuper     bool
	AskPassword  bool
}

func (c *Cli) runUsersCreate(ctx context.Context, f userFields) error {
	if f.Username == "" || f.Email == "" {
		return fmt.Errorf("--username and --email are required")
	}

	password, err := c.newPassword(f.PasswordFile)
	if err != nil {
		return err
	}

	payload := api.UserCreate{
		Email:     f.Email,
		Username:  f.Username,
		Password:  password,
		FirstName: optional(f.FirstName),
		LastName:  optional(f.LastName),
	}
	if f.SetActive {
		payload.IsActive = &f.Active
	}
	if f.SetSuper {
		payload.IsSuperuser = &f.Superuser
	}

	user, err := views.CreateUser(ctx, c.cache, c.users, payload)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	c.io.Printf("✓ User %s created (ID: %d)\n", user.Username, user.ID)
	return nil
}

func (c *Cli) runUsersUpdate(ctx context.Context, id int64, f userFields) error {
	payload := api.UserUpdate{
		Email:     optional(f.Email),
		Username:  optional(f.Username),
		FirstName: optional(f.FirstName),
		LastName:  optional(f.LastName),
	}
	if f.SetActive {
		payload.IsActive = &f.Active
	}
	if f.SetSuper {
		payload.IsSuperuser = &f.Superuser
	}
	if f.AskPassword || f.PasswordFile != "" {
		password, err := c.newPassword(f.PasswordFile)
		if err != nil {
			return err
		}
		payload.Password = &password
	}

	if payload == (api.UserUpdate{}) {
		return fmt.Errorf("nothing to update, pass at least one field flag")
	}

	user, err := views.UpdateUser(ctx, c.cache, c.users, id, payload)
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", id, err)
	}

	c.io.Printf("✓ User %s updated\n", user.Username)
	return nil
}

func (c *Cli) runUsersDelete(ctx context.Context, id int64, yes bool) error {
	if !yes {
		ok, err := c.confirm("Are you sure you want to delete this user?")
		if err != nil {
			return err
		}
		if !ok {
			c.io.Println("Cancelled.")
			return nil
		}
	}

	if err := views.DeleteUser(ctx, c.cache, c.users, id); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}

	c.io.Printf("✓ User %d deleted\n", id)
	return nil
}

// newPassword reads the password of the user being created or updated.
func (c *Cli) newPassword(file string) (string, error) {
	if file != "" {
		content, err := afero.ReadFile(c.fs, file)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	password, err := c.io.ReadPassword("New password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}
