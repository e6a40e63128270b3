package domain

// CriticalSpendRatio is the spend/baseline ratio above which a spend spike is
// classified HIGH and becomes eligible for auto-pause. It is intentionally
// not part of Thresholds.
const CriticalSpendRatio = 3.0

// Thresholds are the detection cutoffs. The value is loaded once at startup
// and never mutated.
type Thresholds struct {
	// SpendSpike is the spend/baseline ratio above which SPENDING_SPIKE fires.
	SpendSpike float64
	// CTRDrop is the ctr/baseline ratio below which CTR_ANOMALY fires.
	CTRDrop float64
	// SuspiciousClicks is the absolute click count above which
	// HIGH_CLICK_VOLUME fires.
	SuspiciousClicks float64
	// BudgetBreach is the spend/daily-budget ratio above which BUDGET_BREACH
	// fires.
	BudgetBreach float64
	// AutoPauseCritical enables pausing campaigns on critical spend spikes.
	AutoPauseCritical bool
}
