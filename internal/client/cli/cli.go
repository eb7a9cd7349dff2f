// Package cli implements the scraperadmin commands. Each command mounts a
// view, renders its state through iocli.IO and unmounts it.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/spf13/afero"

	httpClient "github.com/iudanet/scraperadmin/internal/client/api"
	"github.com/iudanet/scraperadmin/internal/client/auth"
	"github.com/iudanet/scraperadmin/internal/client/config"
	"github.com/iudanet/scraperadmin/internal/client/gateway"
	"github.com/iudanet/scraperadmin/internal/client/iocli"
	"github.com/iudanet/scraperadmin/internal/client/query"
	"github.com/iudanet/scraperadmin/internal/client/storage"
	"github.com/iudanet/scraperadmin/internal/client/views"
)

// PasswordEnv overrides the interactive password prompt of login.
const PasswordEnv = "SCRAPERADMIN_PASSWORD"

// ErrReported means the command already printed its error for the user.
var ErrReported = errors.New("error already reported")

// Passwords lists the non-interactive password sources of login.
type Passwords struct {
	FromFile string
}

type Cli struct {
	io          iocli.IO
	logger      *slog.Logger
	cfg         *config.Config
	fs          afero.Fs
	session     *auth.Session
	authService *auth.Service
	cache       *query.Cache
	users       views.UsersGateway
	reports     views.ReportsGateway
	downloads   views.DownloadsGateway
	health      views.HealthGateway
	closers     []func() error
	quiet       atomic.Bool // подавляет сообщение о логине во время login
}

// New wires the client stack: session over store, HTTP client with the
// interceptor pipeline, gateways and the query cache.
func New(io iocli.IO, cfg *config.Config, store storage.TokenStorage, logger *slog.Logger, fs afero.Fs) *Cli {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	c := &Cli{
		io:     io,
		logger: logger,
		cfg:    cfg,
		fs:     fs,
	}

	c.session = auth.NewSession(store, auth.RedirectFunc(c.redirectToLogin), logger)

	client := httpClient.NewClient(cfg.APIBaseURL(),
		httpClient.WithTimeout(cfg.Timeout),
		httpClient.WithInterceptors(
			httpClient.RequestIDInterceptor(),
			httpClient.LoggingInterceptor(logger),
			httpClient.AuthInterceptor(c.session),
			httpClient.UnauthorizedInterceptor(c.session, logger),
		),
	)

	c.authService = auth.NewService(gateway.NewAuth(client), c.session, logger)
	c.cache = query.New(logger, query.WithStaleTime(cfg.StaleTime))
	c.users = gateway.NewUsers(client)
	c.reports = gateway.NewReports(client)
	c.downloads = gateway.NewDownloads(client)
	c.health = gateway.NewHealth(client)
	return c
}

// Close waits for background re-fetches and releases resources.
func (c *Cli) Close() error {
	c.cache.Wait()
	var errs []error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// redirectToLogin is the login boundary of a console app: tell the user once.
func (c *Cli) redirectToLogin(ctx context.Context) {
	if c.quiet.Load() {
		return
	}
	c.io.Println()
	c.io.Println("Your session has expired or is not valid.")
	c.io.Println("Run 'scraperadmin login' to sign in again.")
}

// loadFailed renders the generic page error for a failed query.
func (c *Cli) loadFailed(resource string, err error) error {
	c.logger.Debug("query failed", "resource", resource, "kind", httpClient.KindOf(err).String(), "error", err)
	c.io.Println(views.LoadErrorMessage(resource))
	return ErrReported
}

// confirm asks a yes/no question; anything but y/yes is a no.
func (c *Cli) confirm(question string) (bool, error) {
	answer, err := c.io.ReadInput(question + " [y/N]: ")
	if err != nil {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// getPassword retrieves the login password with priority:
// 1. Environment variable SCRAPERADMIN_PASSWORD
// 2. File given by --password-file
// 3. Interactive prompt (fallback)
func (c *Cli) getPassword(passwords Passwords) (string, error) {
	// Priority 1: Environment variable
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	// Priority 2: File
	if passwords.FromFile != "" {
		content, err := afero.ReadFile(c.fs, passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	// Priority 3: Interactive prompt
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}
