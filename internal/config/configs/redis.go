package configs

// Redis configures the Redis baseline backend. Baselines live in hashes under
// KeyPrefix.
type Redis struct {
	Addr      string `env:"ADDR" envDefault:"localhost:6379" yaml:"addr"`
	Password  string `env:"PASSWORD" yaml:"-"`
	DB        int    `env:"DB" envDefault:"0" yaml:"db"`
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"ads-firewall" yaml:"key_prefix"`
}
