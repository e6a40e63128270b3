package configs

// HTTP defines configuration for the operations HTTP server that exposes
// health, Prometheus metrics and read-only alert/baseline endpoints.
type HTTP struct {
	// Enabled turns the server on. The scan loop runs either way.
	Enabled bool `env:"ENABLED" envDefault:"true" yaml:"enabled"`
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080" yaml:"port"`
}
