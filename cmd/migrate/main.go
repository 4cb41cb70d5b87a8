package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"happy/internal/infra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var migrationsPath string

	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply the orphanage schema migrations to Postgres",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&migrationsPath, "path", "", "migrations directory (defaults to database.migrations_path)")

	withMigrator := func(fn func(m *infra.Migrator, args []string) error) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := infra.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.Database.Driver != "postgres" {
				return fmt.Errorf("migrations target postgres, configured driver is %q", cfg.Database.Driver)
			}

			logger := infra.NewLogger(cfg.Log).Named("migrate")
			defer func() { _ = logger.Sync() }()

			path := migrationsPath
			if path == "" {
				path = cfg.Database.MigrationsPath
			}

			m, err := infra.NewMigrator(cfg.Database.URL, path, logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := m.Close(); err != nil {
					logger.Warn("failed to close migrator", zap.Error(err))
				}
			}()
			return fn(m, args)
		}
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(m *infra.Migrator, _ []string) error {
				return m.Up()
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back all migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(m *infra.Migrator, _ []string) error {
				return m.Down()
			}),
		},
		&cobra.Command{
			Use:   "steps N",
			Short: "Apply N migrations (negative rolls back)",
			Args:  cobra.ExactArgs(1),
			RunE: withMigrator(func(m *infra.Migrator, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid step count %q: %w", args[0], err)
				}
				return m.Steps(n)
			}),
		},
		&cobra.Command{
			Use:   "force VERSION",
			Short: "Set the schema version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: withMigrator(func(m *infra.Migrator, args []string) error {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version %q: %w", args[0], err)
				}
				return m.Force(v)
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(m *infra.Migrator, _ []string) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Printf("version=%d dirty=%t\n", version, dirty)
				return nil
			}),
		},
	)

	return rootCmd
}
