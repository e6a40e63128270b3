package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"ads-firewall/db/migrations"
	"ads-firewall/internal/adapter/postgres"
	redisadapter "ads-firewall/internal/adapter/redis"
	"ads-firewall/internal/adapter/sqlite"
	"ads-firewall/internal/config"
	"ads-firewall/internal/config/configs"
	"ads-firewall/internal/core/port"
	"ads-firewall/internal/db"
)

// baselineBackend is what a baseline store offers to the scanner and the
// HTTP surface.
type baselineBackend interface {
	port.BaselineStore
	port.BaselineReader
}

// storage owns the database handles opened for one command.
type storage struct {
	baselines baselineBackend
	alerts    port.AlertRepository

	pg    *pgxpool.Pool
	lite  *sqlx.DB
	redis *redis.Client
}

// openStorage connects every backend the configuration names, applies
// migrations where enabled and returns the selected repositories.
func openStorage(ctx context.Context, cfg config.Config, log *slog.Logger) (*storage, error) {
	s := &storage{}

	if cfg.UsesDriver(configs.DriverSQLite) {
		conn, err := db.NewSQLite(ctx, cfg.SQLite)
		if err != nil {
			return nil, err
		}
		s.lite = conn
		if cfg.SQLite.RunMigrations {
			if err = db.Migrate(migrations.SQLite, db.SQLiteURL(cfg.SQLite.Path)); err != nil {
				s.Close()
				return nil, fmt.Errorf("migrate sqlite: %w", err)
			}
			log.Info("sqlite migrations applied", slog.String("path", cfg.SQLite.Path))
		}
	}

	if cfg.UsesDriver(configs.DriverPostgres) {
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(migrations.Postgres, cfg.Psql.Addr.String()); err != nil {
				s.Close()
				return nil, fmt.Errorf("migrate postgres: %w", err)
			}
			log.Info("postgres migrations applied")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		s.pg = pool
	}

	switch cfg.Storage.Driver {
	case configs.DriverSQLite:
		s.baselines = sqlite.NewBaselineRepository(s.lite)
	case configs.DriverPostgres:
		s.baselines = postgres.NewBaselineRepository(s.pg)
	case configs.DriverRedis:
		client, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.redis = client
		s.baselines = redisadapter.NewBaselineStore(client, cfg.Redis.KeyPrefix)
	default:
		s.Close()
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	switch cfg.Storage.Alerts {
	case configs.DriverSQLite:
		s.alerts = sqlite.NewAlertRepository(s.lite)
	case configs.DriverPostgres:
		s.alerts = postgres.NewAlertRepository(s.pg)
	default:
		s.Close()
		return nil, fmt.Errorf("unknown alerts driver %q", cfg.Storage.Alerts)
	}
	return s, nil
}

// Close releases every handle. It is safe on a partially opened storage.
func (s *storage) Close() error {
	var errs []error
	if s.pg != nil {
		s.pg.Close()
	}
	if s.lite != nil {
		errs = append(errs, s.lite.Close())
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	return errors.Join(errs...)
}
