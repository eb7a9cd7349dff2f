package server

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/iudanet/scraperadmin/internal/crypto"
	"github.com/iudanet/scraperadmin/internal/models"
	"github.com/iudanet/scraperadmin/internal/server/handlers"
	"github.com/iudanet/scraperadmin/internal/server/storage"
	"github.com/iudanet/scraperadmin/pkg/api"
)

// FilesDir is the file store directory for seeded downloads.
const FilesDir = "files"

// EnsureAdmin creates the admin account unless a user with that name exists.
// It reports whether the account was created.
func EnsureAdmin(ctx context.Context, users storage.UserStorage, username, email, password string) (bool, error) {
	_, err := users.GetUserByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return false, fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return false, err
	}

	admin := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		IsActive:     true,
		IsSuperuser:  true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := users.CreateUser(ctx, admin); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}

type seedUser struct {
	first, last string
	username    string
	active      bool
}

type seedFile struct {
	name    string
	content string
}

// Seed fills an empty database with demo users, reports and downloads.
// Demo users share the password "password123".
func Seed(ctx context.Context, store storage.Storage, files afero.Fs) error {
	now := time.Now().UTC()

	hash, err := crypto.HashPassword("password123")
	if err != nil {
		return err
	}

	for i, u := range []seedUser{
		{first: "Alice", last: "Johnson", username: "alice", active: true},
		{first: "Bob", last: "Smith", username: "bob", active: true},
		{first: "Carol", last: "", username: "carol", active: false},
	} {
		user := &models.User{
			Email:        u.username + "@example.com",
			Username:     u.username,
			PasswordHash: hash,
			FirstName:    &u.first,
			IsActive:     u.active,
			CreatedAt:    now.Add(-time.Duration(30-i) * 24 * time.Hour),
		}
		if u.last != "" {
			user.LastName = &u.last
		}
		if err := store.CreateUser(ctx, user); err != nil && !errors.Is(err, storage.ErrUserAlreadyExists) {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
	}

	if err := files.MkdirAll(FilesDir, 0o755); err != nil {
		return fmt.Errorf("seed files dir: %w", err)
	}

	for i, f := range []seedFile{
		{name: "listings-2024-05.csv", content: "id,address,price\n1,12 High St,250000\n2,3 Mill Ln,310000\n"},
		{name: "planning-permissions.json", content: `[{"reference":"24/0001/FUL","status":"approved"}]` + "\n"},
		{name: "scrape-summary.txt", content: strings.Repeat("pages scraped: 1200\n", 64)},
	} {
		filePath := path.Join(FilesDir, f.name)
		if err := afero.WriteFile(files, filePath, []byte(f.content), 0o644); err != nil {
			return fmt.Errorf("seed file %s: %w", f.name, err)
		}
		download := &models.Download{
			Filename:    f.name,
			FilePath:    filePath,
			FileSize:    int64(len(f.content)),
			ContentType: handlers.ContentTypeFor(f.name),
			CreatedAt:   now.Add(-time.Duration(3-i) * time.Hour),
		}
		if err := store.CreateDownload(ctx, download); err != nil {
			return fmt.Errorf("seed download %s: %w", f.name, err)
		}
	}

	description := "Monthly planning permission scrape"
	for _, r := range []struct {
		title  string
		status api.ReportStatus
	}{
		{title: "May planning permissions", status: api.ReportStatusPending},
		{title: "Listings price check", status: api.ReportStatusProcessing},
		{title: "April planning permissions", status: api.ReportStatusFailed},
	} {
		report := &models.Report{
			Title:       r.title,
			Description: &description,
			Status:      string(r.status),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := store.CreateReport(ctx, report); err != nil {
			return fmt.Errorf("seed report %q: %w", r.title, err)
		}
	}

	return nil
}
