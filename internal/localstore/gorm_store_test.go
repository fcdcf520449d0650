package localstore_test

import (
	"context"
	"testing"

	"go-leave/internal/localstore"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGormStore(t *testing.T) localstore.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	assert.NoError(t, err)
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	// one connection so every query sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.NoError(t, db.AutoMigrate(&localstore.Entry{}))
	return localstore.NewGormStore(db)
}

func TestGormStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		store := setupGormStore(t)

		val, found, err := store.Get(ctx, "adminLeaveRequests")
		assert.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, val)
	})

	t.Run("set then overwrite", func(t *testing.T) {
		store := setupGormStore(t)

		assert.NoError(t, store.Set(ctx, "adminLeaveRequests", []byte(`[{"id":"1"}]`)))
		assert.NoError(t, store.Set(ctx, "adminLeaveRequests", []byte(`[{"id":"2"},{"id":"1"}]`)))

		val, found, err := store.Get(ctx, "adminLeaveRequests")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.JSONEq(t, `[{"id":"2"},{"id":"1"}]`, string(val))
	})

	t.Run("keys are independent", func(t *testing.T) {
		store := setupGormStore(t)

		assert.NoError(t, store.Set(ctx, "userLeaveHistory:a@example.com", []byte(`[]`)))

		_, found, err := store.Get(ctx, "userLeaveHistory:b@example.com")
		assert.NoError(t, err)
		assert.False(t, found)
	})
}
