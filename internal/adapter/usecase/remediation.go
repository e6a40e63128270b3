package usecase

import "ads-firewall/internal/core/domain"

// Action is the remediation chosen for a finding.
type Action int

const (
	// ActionAlert records the finding only.
	ActionAlert Action = iota
	// ActionPause records the finding and pauses the campaign.
	ActionPause
)

func (a Action) String() string {
	if a == ActionPause {
		return "pause"
	}
	return "alert"
}

// Policy maps findings to actions. Only critical spend spikes pause, and only
// when auto-pause is enabled.
type Policy struct {
	autoPause bool
}

// NewPolicy builds a policy from the thresholds' auto-pause flag.
func NewPolicy(th domain.Thresholds) Policy {
	return Policy{autoPause: th.AutoPauseCritical}
}

// Decide evaluates a single finding, independently of any other finding for
// the same campaign.
func (p Policy) Decide(f domain.Finding) Action {
	if p.autoPause &&
		f.Type == domain.FindingSpendingSpike &&
		f.Ratio > domain.CriticalSpendRatio {
		return ActionPause
	}
	return ActionAlert
}
