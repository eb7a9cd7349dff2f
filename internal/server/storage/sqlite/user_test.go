package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/scraperadmin/internal/models"
	"github.com/iudanet/scraperadmin/internal/server/storage"
)

func newTestUser(username string) *models.User {
	return &models.User{
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "hash-" + username,
		FirstName:    strPtr("Test"),
		IsActive:     true,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	tests := []struct {
		wantError error
		user      *models.User
		name      string
	}{
		{
			name:      "create new user successfully",
			user:      newTestUser("alice"),
			wantError: nil,
		},
		{
			name:      "create second user",
			user:      newTestUser("bob"),
			wantError: nil,
		},
		{
			name:      "duplicate username",
			user:      &models.User{Email: "other@example.com", Username: "alice", PasswordHash: "x", CreatedAt: time.Now()},
			wantError: storage.ErrUserAlreadyExists,
		},
		{
			name:      "duplicate email",
			user:      &models.User{Email: "bob@example.com", Username: "bobby", PasswordHash: "x", CreatedAt: time.Now()},
			wantError: storage.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.CreateUser(ctx, tt.user)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Positive(t, tt.user.ID)

			// Verify user was created
			got, err := s.GetUserByID(ctx, tt.user.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.user.Username, got.Username)
			assert.Equal(t, tt.user.Email, got.Email)
			assert.Equal(t, tt.user.PasswordHash, got.PasswordHash)
			require.NotNil(t, got.FirstName)
			assert.Equal(t, "Test", *got.FirstName)
			assert.Nil(t, got.LastName)
			assert.True(t, got.IsActive)
			assert.True(t, tt.user.CreatedAt.Equal(got.CreatedAt))
		})
	}
}

func TestUserStorage_GetUserByUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser("carol")
	require.NoError(t, s.CreateUser(ctx, user))

	got, err := s.GetUserByUsername(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = s.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	_, err = s.GetUserByID(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_ListUsers(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	for _, name := range []string{"u1", "u2", "u3", "u4"} {
		require.NoError(t, s.CreateUser(ctx, newTestUser(name)))
	}

	tests := []struct {
		name  string
		want  []string
		skip  int
		limit int
	}{
		{name: "all", skip: 0, limit: 100, want: []string{"u1", "u2", "u3", "u4"}},
		{name: "first page", skip: 0, limit: 2, want: []string{"u1", "u2"}},
		{name: "second page", skip: 2, limit: 2, want: []string{"u3", "u4"}},
		{name: "past the end", skip: 10, limit: 2, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := s.ListUsers(ctx, tt.skip, tt.limit)
			require.NoError(t, err)

			names := make([]string, 0, len(users))
			for _, u := range users {
				names = append(names, u.Username)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestUserStorage_UpdateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser("dave")
	require.NoError(t, s.CreateUser(ctx, user))
	require.NoError(t, s.CreateUser(ctx, newTestUser("erin")))

	user.Email = "dave@new.example.com"
	user.LastName = strPtr("Smith")
	user.IsSuperuser = true
	require.NoError(t, s.UpdateUser(ctx, user))

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "dave@new.example.com", got.Email)
	require.NotNil(t, got.LastName)
	assert.Equal(t, "Smith", *got.LastName)
	assert.True(t, got.IsSuperuser)

	// username уже занят другим пользователем
	user.Username = "erin"
	assert.ErrorIs(t, s.UpdateUser(ctx, user), storage.ErrUserAlreadyExists)

	missing := newTestUser("ghost")
	missing.ID = 999
	assert.ErrorIs(t, s.UpdateUser(ctx, missing), storage.ErrUserNotFound)
}

func TestUserStorage_DeleteUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser("frank")
	require.NoError(t, s.CreateUser(ctx, user))

	require.NoError(t, s.DeleteUser(ctx, user.ID))

	_, err := s.GetUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	assert.ErrorIs(t, s.DeleteUser(ctx, user.ID), storage.ErrUserNotFound)
}
