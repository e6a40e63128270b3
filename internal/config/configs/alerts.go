package configs

import "time"

// Alerts configures the notification channels. Timeout applies separately
// to persisting an alert and to each channel delivering it.
type Alerts struct {
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s" yaml:"timeout"`

	Contacts Contacts `envPrefix:"CONTACT_" yaml:"contacts"`
	Slack    Slack    `envPrefix:"SLACK_" yaml:"slack"`
	Email    Email    `envPrefix:"EMAIL_" yaml:"email"`
	SMS      SMS      `envPrefix:"SMS_" yaml:"sms"`
}

// Contacts are the alert recipients. Emergency recipients are added to
// HIGH and CRITICAL alerts only.
type Contacts struct {
	PrimaryEmail   string `env:"PRIMARY_EMAIL" yaml:"primary_email"`
	EmergencyEmail string `env:"EMERGENCY_EMAIL" yaml:"emergency_email"`
	PrimaryPhone   string `env:"PRIMARY_PHONE" yaml:"primary_phone"`
}

type Slack struct {
	Enabled    bool   `env:"ENABLED" envDefault:"false" yaml:"enabled"`
	WebhookURL string `env:"WEBHOOK_URL" yaml:"webhook_url"`
}

type Email struct {
	Enabled    bool   `env:"ENABLED" envDefault:"false" yaml:"enabled"`
	SMTPServer string `env:"SMTP_SERVER" yaml:"smtp_server"`
	SMTPPort   int    `env:"SMTP_PORT" envDefault:"587" yaml:"smtp_port"`
	Username   string `env:"USERNAME" yaml:"username"`
	Password   string `env:"PASSWORD" yaml:"-"`
	From       string `env:"FROM" envDefault:"ads-firewall@localhost" yaml:"from"`
}

// SMS is delivered through Twilio's REST API.
type SMS struct {
	Enabled    bool   `env:"ENABLED" envDefault:"false" yaml:"enabled"`
	AccountSID string `env:"ACCOUNT_SID" yaml:"account_sid"`
	AuthToken  string `env:"AUTH_TOKEN" yaml:"-"`
	From       string `env:"FROM" yaml:"from"`
	BaseURL    string `env:"BASE_URL" envDefault:"https://api.twilio.com" yaml:"base_url"`
}
