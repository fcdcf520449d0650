package migrations_test

import (
	"context"
	"path/filepath"
	"testing"

	"go-leave/internal/config"
	"go-leave/internal/migrations"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestDialect(t *testing.T) {
	assert.Equal(t, "sqlite3", migrations.Dialect(config.StoreDriverSQLite))
	assert.Equal(t, "postgres", migrations.Dialect(config.StoreDriverPostgres))
	assert.Equal(t, "postgres", migrations.Dialect(config.StoreDriverRedis))
}

func TestUpDownOnSQLite(t *testing.T) {
	ctx := context.Background()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "migrate.db")), &gorm.Config{})
	assert.NoError(t, err)
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	defer sqlDB.Close()

	assert.NoError(t, migrations.Up(ctx, sqlDB, config.StoreDriverSQLite))

	for _, table := range []string{"local_store_entries", "employees", "leave_balance_applications", "outbox_events"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	// running again is a no-op
	assert.NoError(t, migrations.Up(ctx, sqlDB, config.StoreDriverSQLite))

	assert.NoError(t, migrations.Down(ctx, sqlDB, config.StoreDriverSQLite))
	assert.False(t, db.Migrator().HasTable("outbox_events"))
	assert.True(t, db.Migrator().HasTable("employees"))
}
