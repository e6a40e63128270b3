package configs

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
)

// Storage selects the backends for baselines and alerts. Redis can only hold
// baselines, so Alerts must name a relational driver.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"sqlite" yaml:"driver"`
	Alerts string `env:"ALERTS" envDefault:"sqlite" yaml:"alerts"`
}
