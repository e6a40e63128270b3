package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ads-firewall/db/migrations"
	"ads-firewall/internal/config/configs"
	"ads-firewall/internal/db"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations for the configured storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, closer, err := a.load(false)
			if err != nil {
				return err
			}
			defer closer.Close()

			if cfg.UsesDriver(configs.DriverSQLite) {
				// opening creates the file and its directory
				conn, err := db.NewSQLite(cmd.Context(), cfg.SQLite)
				if err != nil {
					return err
				}
				conn.Close()
				if err = db.Migrate(migrations.SQLite, db.SQLiteURL(cfg.SQLite.Path)); err != nil {
					return fmt.Errorf("migrate sqlite: %w", err)
				}
				fmt.Fprintf(a.stdout, "sqlite migrated: %s\n", cfg.SQLite.Path)
			}
			if cfg.UsesDriver(configs.DriverPostgres) {
				if err = db.Migrate(migrations.Postgres, cfg.Psql.Addr.String()); err != nil {
					return fmt.Errorf("migrate postgres: %w", err)
				}
				fmt.Fprintln(a.stdout, "postgres migrated")
			}
			log.Info("migrations applied")
			return nil
		},
	}
}
