package configs

import "time"

// Meta configures the Graph API client used both as metrics source and as
// campaign actuator.
type Meta struct {
	AccessToken string `env:"ACCESS_TOKEN" yaml:"access_token"`
	// AdAccountID is the account to scan, in "act_<id>" form.
	AdAccountID string `env:"AD_ACCOUNT_ID" yaml:"ad_account_id"`
	// AppSecret, when set, is used to sign every request with
	// appsecret_proof.
	AppSecret  string `env:"APP_SECRET" yaml:"app_secret"`
	BaseURL    string `env:"BASE_URL" envDefault:"https://graph.facebook.com" yaml:"base_url"`
	APIVersion string `env:"API_VERSION" envDefault:"v17.0" yaml:"api_version"`

	// Timeout bounds every single upstream call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s" yaml:"timeout"`
	// RateLimit is the sustained number of requests per second; RateBurst the
	// bucket size.
	RateLimit    float64 `env:"RATE_LIMIT" envDefault:"5" yaml:"rate_limit"`
	RateBurst    int     `env:"RATE_BURST" envDefault:"10" yaml:"rate_burst"`
	PauseRetries uint    `env:"PAUSE_RETRIES" envDefault:"3" yaml:"pause_retries"`

	// EffectiveStatuses filters the campaigns listed for scanning.
	EffectiveStatuses []string `env:"EFFECTIVE_STATUSES" envDefault:"ACTIVE" envSeparator:"," yaml:"effective_statuses"`
	// BudgetMinorUnits treats budgets returned by the API as minor currency
	// units (cents) and converts them to major units.
	BudgetMinorUnits bool `env:"BUDGET_MINOR_UNITS" envDefault:"true" yaml:"budget_minor_units"`
}
