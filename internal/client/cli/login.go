package cli

import (
	"context"
	"fmt"

	httpClient "github.com/iudanet/scraperadmin/internal/client/api"
)

// loginOptions are the flags of the login command.
type loginOptions struct {
	Username  string
	Token     string
	Passwords Passwords
}

func (c *Cli) runLogin(ctx context.Context, opts loginOptions) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	// 401 на /auth/login это неверные учетные данные, а не истекшая сессия
	c.quiet.Store(true)
	defer c.quiet.Store(false)

	if opts.Token != "" {
		if err := c.authService.LoginWithToken(ctx, opts.Token); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}
		c.io.Println("✓ Token saved.")
		return nil
	}

	username := opts.Username
	if username == "" {
		var err error
		username, err = c.io.ReadInput("Username: ")
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
	}

	password, err := c.getPassword(opts.Passwords)
	if err != nil {
		return err
	}

	c.io.Println("Authenticating...")

	if err := c.authService.Login(ctx, username, password); err != nil {
		if httpClient.IsUnauthorized(err) {
			return fmt.Errorf("login failed: invalid username or password")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println("✓ Login successful!")
	c.io.Printf("Logged in as %s at %s\n", username, c.cfg.Server)
	return nil
}
