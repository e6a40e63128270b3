package configs

// SQLite configures the embedded single-file store.
type SQLite struct {
	Path          string `env:"PATH" envDefault:"data/firewall.db" yaml:"path"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"true" yaml:"run_migrations"`
}
