package connection_test

import (
	"testing"

	"go-leave/internal/config"
	"go-leave/internal/shared/connection"

	"github.com/stretchr/testify/assert"
)

func TestPostgresDSN(t *testing.T) {
	dsn := connection.PostgresDSN(config.DatabaseConfig{
		Host:     "db",
		User:     "leave",
		Password: "secret",
		Name:     "leave",
		Port:     "5432",
		SSLMode:  "disable",
	})

	assert.Equal(t, "host=db user=leave password=secret dbname=leave port=5432 sslmode=disable", dsn)
}

func TestOpenGORM_SQLite(t *testing.T) {
	db, err := connection.OpenGORM(config.Config{
		StoreDriver: config.StoreDriverSQLite,
		SQLitePath:  "file::memory:",
	}, 1)

	assert.NoError(t, err)
	assert.Equal(t, "sqlite", db.Dialector.Name())
}
