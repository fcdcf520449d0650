package main

import (
	"context"
	"os"

	"go-leave/internal/config"
	"go-leave/internal/migrations"
	"go-leave/internal/shared/connection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		logger.Error("migrate failed", zap.Error(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var rollback bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "apply the embedded SQL migrations to the configured database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), rollback)
		},
	}
	cmd.Flags().BoolVarP(&rollback, "rollback", "r", false, "roll back the latest migration")

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "print the migration status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			db, err := connection.OpenGORM(cfg, 5)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()
			return migrations.Status(cmd.Context(), sqlDB, cfg.StoreDriver)
		},
	})

	return cmd
}

func run(ctx context.Context, rollback bool) error {
	cfg := config.Load()
	db, err := connection.OpenGORM(cfg, 5)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if rollback {
		if err := migrations.Down(ctx, sqlDB, cfg.StoreDriver); err != nil {
			return err
		}
		zap.L().Info("latest migration rolled back")
		return nil
	}

	if err := migrations.Up(ctx, sqlDB, cfg.StoreDriver); err != nil {
		return err
	}
	zap.L().Info("migrations applied", zap.String("store_driver", cfg.StoreDriver))
	return nil
}
