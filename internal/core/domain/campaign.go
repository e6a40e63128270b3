package domain

// Campaign is the local, per-cycle copy of an upstream advertising campaign.
// Budgets are expressed in major currency units; nil means the campaign does
// not declare that budget.
type Campaign struct {
	ID              string
	Name            string
	Status          string // ACTIVE, PAUSED, ...
	EffectiveStatus string
	Objective       string
	DailyBudget     *float64
	LifetimeBudget  *float64
}

// Campaign lifecycle statuses as reported by the upstream platform.
const (
	StatusActive = "ACTIVE"
	StatusPaused = "PAUSED"
)

// HasDailyBudget reports whether the campaign declares a positive daily budget.
func (c Campaign) HasDailyBudget() bool {
	return c.DailyBudget != nil && *c.DailyBudget > 0
}
