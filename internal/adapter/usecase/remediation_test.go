package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ads-firewall/internal/core/domain"
)

func TestPolicyDecide(t *testing.T) {
	on := NewPolicy(domain.Thresholds{AutoPauseCritical: true})
	off := NewPolicy(domain.Thresholds{AutoPauseCritical: false})

	tests := []struct {
		name    string
		policy  Policy
		finding domain.Finding
		want    Action
	}{
		{"critical spike with auto-pause", on, domain.Finding{Type: domain.FindingSpendingSpike, Severity: domain.SeverityHigh, Ratio: 3.5}, ActionPause},
		{"critical spike without auto-pause", off, domain.Finding{Type: domain.FindingSpendingSpike, Severity: domain.SeverityHigh, Ratio: 3.5}, ActionAlert},
		{"medium spike", on, domain.Finding{Type: domain.FindingSpendingSpike, Severity: domain.SeverityMedium, Ratio: 2.5}, ActionAlert},
		{"ratio exactly critical", on, domain.Finding{Type: domain.FindingSpendingSpike, Severity: domain.SeverityMedium, Ratio: 3.0}, ActionAlert},
		{"budget breach", on, domain.Finding{Type: domain.FindingBudgetBreach, Severity: domain.SeverityHigh, Ratio: 10}, ActionAlert},
		{"ctr anomaly", on, domain.Finding{Type: domain.FindingCTRAnomaly, Severity: domain.SeverityMedium, Ratio: 0.1}, ActionAlert},
		{"click volume", on, domain.Finding{Type: domain.FindingHighClickVolume, Severity: domain.SeverityMedium}, ActionAlert},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Decide(tt.finding))
		})
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "pause", ActionPause.String())
	assert.Equal(t, "alert", ActionAlert.String())
}
