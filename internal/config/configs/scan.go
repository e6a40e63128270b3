package configs

import "time"

// Scan configures the scan orchestrator loop.
type Scan struct {
	Interval time.Duration `env:"INTERVAL" envDefault:"60s" yaml:"interval"`
	// Concurrency is the number of campaigns processed in parallel within a
	// cycle. 1 keeps processing sequential.
	Concurrency int `env:"CONCURRENCY" envDefault:"1" yaml:"concurrency"`
	// DryRun records findings but never calls the actuator.
	DryRun bool `env:"DRY_RUN" envDefault:"false" yaml:"dry_run"`
	// StoreTimeout bounds each baseline read or write.
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"10s" yaml:"store_timeout"`
}
