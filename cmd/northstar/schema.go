package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/forgo/northstar/internal/config"
	"github.com/forgo/northstar/internal/repository"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.AddCommand(schemaApplyCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Manage the storage schema",
}

var schemaApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Create tables and named constraints on the configured store",
	Args:  cobra.NoArgs,
	RunE:  runSchemaApply,
}

func runSchemaApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return &exitError{code: ExitStoreError, err: err}
		}
		defer func() { _ = db.Close() }()
		if err := repository.ApplyPostgresSchema(ctx, db); err != nil {
			return &exitError{code: ExitStoreError, err: err}
		}

	case config.DriverSurrealDB:
		db, err := openSurreal(ctx, cfg)
		if err != nil {
			return &exitError{code: ExitStoreError, err: err}
		}
		defer func() { _ = db.Close() }()
		if err := repository.ApplySurrealSchema(ctx, db); err != nil {
			return &exitError{code: ExitStoreError, err: err}
		}

	default:
		logger.Info("nothing to apply", slog.String("driver", cfg.Store.Driver))
		return nil
	}

	logger.Info("schema applied", slog.String("driver", cfg.Store.Driver))
	return nil
}
