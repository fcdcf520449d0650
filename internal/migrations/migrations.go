package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"go-leave/internal/config"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var FS embed.FS

const (
	Dir       = "sql"
	TableName = "schema_migrations"
)

// Dialect maps the store driver onto the goose dialect of the SQL database
// behind it.
func Dialect(storeDriver string) string {
	if storeDriver == config.StoreDriverSQLite {
		return "sqlite3"
	}
	return "postgres"
}

func setup(storeDriver string) error {
	goose.SetBaseFS(FS)
	goose.SetTableName(TableName)
	return goose.SetDialect(Dialect(storeDriver))
}

func Up(ctx context.Context, db *sql.DB, storeDriver string) error {
	if err := setup(storeDriver); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, Dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func Down(ctx context.Context, db *sql.DB, storeDriver string) error {
	if err := setup(storeDriver); err != nil {
		return err
	}
	if err := goose.DownContext(ctx, db, Dir); err != nil {
		return fmt.Errorf("goose down: %w", err)
	}
	return nil
}

func Status(ctx context.Context, db *sql.DB, storeDriver string) error {
	if err := setup(storeDriver); err != nil {
		return err
	}
	return goose.StatusContext(ctx, db, Dir)
}
