package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"ads-firewall/internal/config/configs"
	"ads-firewall/internal/core/domain"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library and
// may then be overridden by a YAML file. The nested structs are tagged with
// envPrefix so their fields are parsed with the given prefix. See the
// individual types in the configs package for default values and options.
// Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is only
	// attached to log records.
	Env string `env:"ENV" envDefault:"prod" yaml:"env"`

	HTTP       configs.HTTP       `envPrefix:"HTTP_" yaml:"http"`
	Log        configs.Logger     `envPrefix:"LOG_" yaml:"log"`
	Storage    configs.Storage    `envPrefix:"STORAGE_" yaml:"storage"`
	Psql       configs.Postgres   `envPrefix:"PSQL_" yaml:"postgres"`
	SQLite     configs.SQLite     `envPrefix:"SQLITE_" yaml:"sqlite"`
	Redis      configs.Redis      `envPrefix:"REDIS_" yaml:"redis"`
	Meta       configs.Meta       `envPrefix:"META_" yaml:"meta"`
	Scan       configs.Scan       `envPrefix:"SCAN_" yaml:"scan"`
	Thresholds configs.Thresholds `envPrefix:"THRESHOLD_" yaml:"thresholds"`
	Baseline   configs.Baseline   `envPrefix:"BASELINE_" yaml:"baseline"`
	Alerts     configs.Alerts     `envPrefix:"ALERT_" yaml:"alerts"`

	// AutoActions is only read from the config file.
	AutoActions configs.AutoActions `yaml:"auto_actions"`
}

// Load reads configuration from environment variables into a Config. When
// path is not empty the YAML file at that path is decoded on top, so values
// in the file win over the environment. Unknown keys in the file are
// rejected. Load does not validate; callers pick Validate or
// ValidateStorage depending on what they are about to start.
func Load(path string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if path != "" {
		if err := overlayFile(&cfg, path); err != nil {
			return cfg, err
		}
	}
	if p := cfg.AutoActions.PauseCampaignCritical; p != nil {
		cfg.Thresholds.AutoPauseCritical = *p
	}
	return cfg, nil
}

func overlayFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

// Validate reports every configuration problem at once. A Config that fails
// validation must not be used to start a scan.
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Meta.AccessToken == "" {
		fail("meta: access token is required")
	}
	if c.Meta.AdAccountID == "" {
		fail("meta: ad account id is required")
	} else if !strings.HasPrefix(c.Meta.AdAccountID, "act_") {
		fail("meta: ad account id %q must have the act_ prefix", c.Meta.AdAccountID)
	}
	if c.Meta.Timeout <= 0 {
		fail("meta: timeout must be positive")
	}
	if c.Meta.RateLimit <= 0 || c.Meta.RateBurst <= 0 {
		fail("meta: rate limit and burst must be positive")
	}

	if c.Scan.Interval <= 0 {
		fail("scan: interval must be positive")
	}
	if c.Scan.Concurrency < 1 {
		fail("scan: concurrency must be at least 1")
	}
	if c.Scan.StoreTimeout <= 0 {
		fail("scan: store_timeout must be positive")
	}

	t := c.Thresholds
	if t.SpendSpike <= 0 {
		fail("thresholds: spend_spike must be positive")
	}
	if t.CTRDrop <= 0 || t.CTRDrop >= 1 {
		fail("thresholds: ctr_drop must be in (0, 1)")
	}
	if t.SuspiciousClicks < 0 {
		fail("thresholds: suspicious_clicks must not be negative")
	}
	if t.BudgetBreach <= 0 {
		fail("thresholds: budget_breach must be positive")
	}

	switch c.Baseline.Mode {
	case domain.BaselineReplace:
	case domain.BaselineEMA:
		if c.Baseline.EMAAlpha <= 0 || c.Baseline.EMAAlpha > 1 {
			fail("baseline: ema_alpha must be in (0, 1]")
		}
	default:
		fail("baseline: unknown mode %q", c.Baseline.Mode)
	}

	if err := c.ValidateStorage(); err != nil {
		errs = append(errs, err)
	}

	a := c.Alerts
	if a.Timeout <= 0 {
		fail("alerts: timeout must be positive")
	}
	if a.Slack.Enabled && a.Slack.WebhookURL == "" {
		fail("alerts: slack enabled without webhook url")
	}
	if a.Email.Enabled && (a.Email.SMTPServer == "" || a.Contacts.PrimaryEmail == "") {
		fail("alerts: email enabled without smtp server or primary contact")
	}
	if a.SMS.Enabled && (a.SMS.AccountSID == "" || a.SMS.AuthToken == "" || a.Contacts.PrimaryPhone == "") {
		fail("alerts: sms enabled without twilio credentials or primary phone")
	}

	return errors.Join(errs...)
}

// ValidateStorage checks only the storage section. It is enough for
// commands that touch the database but not the upstream API.
func (c Config) ValidateStorage() error {
	var errs []error
	drivers := []string{configs.DriverPostgres, configs.DriverSQLite, configs.DriverRedis}
	if !slices.Contains(drivers, c.Storage.Driver) {
		errs = append(errs, fmt.Errorf("storage: unknown driver %q", c.Storage.Driver))
	}
	if c.Storage.Alerts != configs.DriverPostgres && c.Storage.Alerts != configs.DriverSQLite {
		errs = append(errs, fmt.Errorf("storage: alerts driver must be postgres or sqlite, got %q", c.Storage.Alerts))
	}
	if c.UsesDriver(configs.DriverSQLite) && c.SQLite.Path == "" {
		errs = append(errs, errors.New("storage: sqlite path is required"))
	}
	return errors.Join(errs...)
}

// UsesDriver reports whether either the baseline or the alert store needs
// the given driver.
func (c Config) UsesDriver(driver string) bool {
	return c.Storage.Driver == driver || c.Storage.Alerts == driver
}
