package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iudanet/scraperadmin/internal/server"
	"github.com/iudanet/scraperadmin/internal/server/config"
	"github.com/iudanet/scraperadmin/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("scraperadmin-server", pflag.ContinueOnError)
	showVersion := flags.Bool("version", false, "Show version information")
	flags.String(config.KeyAddr, config.DefaultAddr, "Listen address")
	flags.String(config.KeyDB, config.DefaultDB, "SQLite database path")
	flags.String("files-dir", "", "Directory for downloadable files (in memory when empty)")
	flags.String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	flags.Bool(config.KeySeed, true, "Seed demo data into an empty database")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if *showVersion {
		printVersion()
		return nil
	}

	v := viper.New()
	for key, flag := range map[string]string{
		config.KeyAddr:     config.KeyAddr,
		config.KeyDB:       config.KeyDB,
		config.KeyFilesDir: "files-dir",
		config.KeyLogLevel: "log-level",
		config.KeySeed:     config.KeySeed,
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return err
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	files, err := openFiles(cfg.FilesDir)
	if err != nil {
		return err
	}

	created, err := server.EnsureAdmin(ctx, store, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return err
	}
	if created {
		logger.Info("admin user created", "username", cfg.AdminUsername)
		if cfg.Seed {
			if err := server.Seed(ctx, store, files); err != nil {
				return err
			}
			logger.Info("demo data seeded")
		}
	}

	srv, err := server.New(cfg, store, files, logger)
	if err != nil {
		return err
	}
	srv.StartWorker(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openFiles(dir string) (afero.Fs, error) {
	if dir == "" {
		return afero.NewMemMapFs(), nil
	}
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create files dir: %w", err)
	}
	return afero.NewBasePathFs(osFs, dir), nil
}

func printVersion() {
	fmt.Printf("ScraperAdmin API Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
