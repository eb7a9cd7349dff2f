// Package server assembles the scraper API: routes, middleware, storage
// and the report worker.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"

	"github.com/iudanet/scraperadmin/internal/crypto"
	"github.com/iudanet/scraperadmin/internal/server/config"
	"github.com/iudanet/scraperadmin/internal/server/handlers"
	"github.com/iudanet/scraperadmin/internal/server/jwt"
	"github.com/iudanet/scraperadmin/internal/server/middleware"
	"github.com/iudanet/scraperadmin/internal/server/storage"
	"github.com/iudanet/scraperadmin/internal/server/worker"
)

// Store is the storage the server runs on.
type Store interface {
	storage.Storage
	handlers.Pinger
}

// Server is the API server with its background worker.
type Server struct {
	echo      *echo.Echo
	logger    *slog.Logger
	limiter   *middleware.RateLimiter
	processor *worker.ReportProcessor
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	addr      string
}

// New wires handlers over store. files is the root of the file store.
func New(cfg *config.Config, store Store, files afero.Fs, logger *slog.Logger) (*Server, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		var err error
		if secret, err = crypto.GenerateSecret(); err != nil {
			return nil, err
		}
		logger.Warn("jwt_secret is not set, tokens will not survive a restart")
	}
	tokens := jwt.NewService(secret, cfg.TokenTTL)

	s := &Server{
		echo:      echo.New(),
		logger:    logger,
		limiter:   middleware.NewRateLimiter(cfg.LoginRate, time.Minute, logger),
		processor: worker.NewReportProcessor(store, files, logger, cfg.ReportStep),
		addr:      cfg.Addr,
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handlers.ErrorHandler(logger)

	e.Use(echomw.RequestID())
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.Logging(logger, "/health", "/api/health"))

	health := handlers.NewHealthHandler(logger, store)
	e.GET("/health", health.Health)
	e.GET("/api/health", health.Health)

	auth := handlers.NewAuthHandler(logger, store, tokens)
	e.POST("/api/v1/auth/login", auth.Login, middleware.RateLimit(s.limiter))

	v1 := e.Group("/api/v1", middleware.Auth(logger, tokens))

	users := handlers.NewUsersHandler(logger, store)
	v1.GET("/users/", users.List)
	v1.GET("/users", users.List)
	v1.POST("/users/", users.Create)
	v1.POST("/users", users.Create)
	v1.GET("/users/:id", users.Get)
	v1.PUT("/users/:id", users.Update)
	v1.DELETE("/users/:id", users.Delete)

	reports := handlers.NewReportsHandler(logger, store)
	v1.GET("/reports/", reports.List)
	v1.GET("/reports", reports.List)
	v1.POST("/reports/", reports.Create)
	v1.POST("/reports", reports.Create)
	v1.GET("/reports/:id", reports.Get)

	downloads := handlers.NewDownloadsHandler(logger, store, files)
	v1.GET("/downloads/", downloads.List)
	v1.GET("/downloads", downloads.List)
	v1.POST("/downloads/", downloads.Create)
	v1.POST("/downloads", downloads.Create)
	v1.GET("/downloads/:id", downloads.Download)

	return s, nil
}

// Handler exposes the router, e.g. for httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// StartWorker runs the report processor until Shutdown.
func (s *Server) StartWorker(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.processor.Run(ctx)
	}()
}

// ListenAndServe blocks until the server stops. http.ErrServerClosed after
// Shutdown is not an error.
func (s *Server) ListenAndServe() error {
	s.logger.Info("API server listening", "addr", s.addr)
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests, waits for in-flight ones and stops the worker.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.echo.Shutdown(ctx)
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	s.limiter.Stop()
	return err
}
