package configs

import "ads-firewall/internal/core/domain"

// Thresholds holds the detection cutoffs.
type Thresholds struct {
	SpendSpike        float64 `env:"SPEND_SPIKE" envDefault:"2.0" yaml:"spend_spike"`
	CTRDrop           float64 `env:"CTR_DROP" envDefault:"0.5" yaml:"ctr_drop"`
	SuspiciousClicks  float64 `env:"SUSPICIOUS_CLICKS" envDefault:"1000" yaml:"suspicious_clicks"`
	BudgetBreach      float64 `env:"BUDGET_BREACH" envDefault:"1.2" yaml:"budget_breach"`
	AutoPauseCritical bool    `env:"AUTO_PAUSE_CRITICAL" envDefault:"false" yaml:"auto_pause_critical"`
}

// Domain converts the configuration section into the immutable value the
// detector and remediation policy work with.
func (t Thresholds) Domain() domain.Thresholds {
	return domain.Thresholds{
		SpendSpike:        t.SpendSpike,
		CTRDrop:           t.CTRDrop,
		SuspiciousClicks:  t.SuspiciousClicks,
		BudgetBreach:      t.BudgetBreach,
		AutoPauseCritical: t.AutoPauseCritical,
	}
}

// AutoActions mirrors the auto_actions block of the YAML file. It has no
// environment variables; THRESHOLD_AUTO_PAUSE_CRITICAL covers that case.
type AutoActions struct {
	// PauseCampaignCritical, when present, overrides
	// Thresholds.AutoPauseCritical.
	PauseCampaignCritical *bool `yaml:"pause_campaign_critical"`
}
