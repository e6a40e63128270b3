package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"ads-firewall/db/migrations"
)

// Migrate applies all up migrations of the given dialect (migrations.Postgres
// or migrations.SQLite) to the database at databaseURL. The URL scheme must
// match the dialect: postgres:// or sqlite://.
func Migrate(dialect, databaseURL string) error {
	driver, err := iofs.New(migrations.FS, dialect)
	if err != nil {
		return fmt.Errorf("load %s migrations: %w", dialect, err)
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, databaseURL)
	if err != nil {
		return fmt.Errorf("open %s database: %w", dialect, err)
	}
	defer mg.Close()

	version, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return fmt.Errorf("%s database is dirty at version %d, fix it and force the version", dialect, version)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// SQLiteURL turns a database file path into a URL accepted by Migrate.
func SQLiteURL(path string) string {
	return "sqlite://" + path
}
