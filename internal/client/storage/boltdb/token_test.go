package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/scraperadmin/internal/client/storage"
)

// создаём тестовое BoltDB хранилище с session bucket
func createTestTokenStorage(t *testing.T) *Storage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "token_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStorage_SaveGetDeleteToken(t *testing.T) {
	ctx := context.Background()
	store := createTestTokenStorage(t)

	token := &storage.TokenData{
		Token:    "header.payload.signature",
		Username: "admin",
		SavedAt:  time.Now().Unix(),
	}

	// До сохранения GetToken выдает ErrTokenNotFound
	_, err := store.GetToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	require.NoError(t, store.SaveToken(ctx, token))

	got, err := store.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, got)

	require.NoError(t, store.DeleteToken(ctx))

	_, err = store.GetToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	// Повторное удаление отсутствующего токена
	err = store.DeleteToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestStorage_SaveToken_Overwrites(t *testing.T) {
	ctx := context.Background()
	store := createTestTokenStorage(t)

	require.NoError(t, store.SaveToken(ctx, &storage.TokenData{Token: "first"}))
	require.NoError(t, store.SaveToken(ctx, &storage.TokenData{Token: "second"}))

	got, err := store.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Token)
}

func TestStorage_TokenSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveToken(ctx, &storage.TokenData{Token: "persisted"}))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	got, err := reopened.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Token)
}

func TestStorage_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestTokenStorage(t)

	// Удаляем bucket session напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketSession)
	})
	require.NoError(t, err)

	_, err = store.GetToken(ctx)
	assert.ErrorContains(t, err, "session bucket not found")

	err = store.SaveToken(ctx, &storage.TokenData{Token: "t"})
	assert.ErrorContains(t, err, "session bucket not found")

	err = store.DeleteToken(ctx)
	assert.ErrorContains(t, err, "session bucket not found")
}
