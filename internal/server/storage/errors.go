package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that username or email is already taken
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrReportNotFound indicates that report was not found in storage
	ErrReportNotFound = errors.New("report not found")

	// ErrDownloadNotFound indicates that download was not found in storage
	ErrDownloadNotFound = errors.New("download not found")
)
