package domain

import "time"

// FindingType classifies a detection result.
type FindingType string

const (
	FindingSpendingSpike   FindingType = "SPENDING_SPIKE"
	FindingCTRAnomaly      FindingType = "CTR_ANOMALY"
	FindingHighClickVolume FindingType = "HIGH_CLICK_VOLUME"
	FindingBudgetBreach    FindingType = "BUDGET_BREACH"
	// FindingCampaignPaused is never produced by detection; it records that
	// remediation paused a campaign.
	FindingCampaignPaused FindingType = "CAMPAIGN_PAUSED"
)

// Severity is an ordinal urgency tag.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Rank orders severities from 0 (unknown) to 4 (CRITICAL).
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

// Urgent reports whether s is HIGH or CRITICAL.
func (s Severity) Urgent() bool {
	return s.Rank() >= SeverityHigh.Rank()
}

// Finding is a single anomaly-detection result. Observed and Reference carry
// the numeric evidence (e.g. current spend and baseline); Ratio is
// Observed/Reference where the rule computes one.
type Finding struct {
	Type       FindingType
	Severity   Severity
	ResourceID string
	Message    string
	Observed   float64
	Reference  float64
	Ratio      float64
}

// Alert is a finding as persisted by the alert sink.
type Alert struct {
	ID         string      `json:"id"`
	Type       FindingType `json:"type"`
	Severity   Severity    `json:"severity"`
	ResourceID string      `json:"resource_id"`
	Message    string      `json:"message"`
	Ratio      float64     `json:"ratio,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}
