package usecase

import (
	"fmt"

	"ads-firewall/internal/core/domain"
)

// Detector classifies one campaign snapshot against its baselines. It holds
// no state besides the thresholds and never touches storage, so the same
// inputs always produce the same findings.
type Detector struct {
	th domain.Thresholds
}

// NewDetector returns a detector bound to the given thresholds.
func NewDetector(th domain.Thresholds) *Detector {
	return &Detector{th: th}
}

// Detect evaluates every rule independently and returns the findings in rule
// order. Rules lacking the data they need (missing field, absent or zero
// baseline, no budget) abstain.
func (d *Detector) Detect(c domain.Campaign, snap *domain.Snapshot, baselines domain.Baselines) []domain.Finding {
	var findings []domain.Finding
	for _, rule := range []func(domain.Campaign, *domain.Snapshot, domain.Baselines) (domain.Finding, bool){
		d.spendSpike,
		d.ctrDrop,
		d.clickVolume,
		d.budgetBreach,
	} {
		if f, ok := rule(c, snap, baselines); ok {
			findings = append(findings, f)
		}
	}
	return findings
}

func (d *Detector) spendSpike(c domain.Campaign, snap *domain.Snapshot, b domain.Baselines) (domain.Finding, bool) {
	spend, ok := snap.Value(domain.FieldSpend)
	if !ok {
		return domain.Finding{}, false
	}
	avg, ok := b.Get(domain.MetricDailySpend)
	if !ok || avg <= 0 {
		return domain.Finding{}, false
	}
	ratio := spend / avg
	if ratio <= d.th.SpendSpike {
		return domain.Finding{}, false
	}
	sev := domain.SeverityMedium
	if ratio > domain.CriticalSpendRatio {
		sev = domain.SeverityHigh
	}
	return domain.Finding{
		Type:       domain.FindingSpendingSpike,
		Severity:   sev,
		ResourceID: c.ID,
		Message:    fmt.Sprintf("Campaign spending %.2f vs average %.2f (ratio: %.2f)", spend, avg, ratio),
		Observed:   spend,
		Reference:  avg,
		Ratio:      ratio,
	}, true
}

func (d *Detector) ctrDrop(c domain.Campaign, snap *domain.Snapshot, b domain.Baselines) (domain.Finding, bool) {
	ctr, ok := snap.Value(domain.FieldCTR)
	if !ok {
		return domain.Finding{}, false
	}
	avg, ok := b.Get(domain.MetricCTR)
	if !ok || avg <= 0 {
		return domain.Finding{}, false
	}
	ratio := ctr / avg
	if ratio >= d.th.CTRDrop {
		return domain.Finding{}, false
	}
	return domain.Finding{
		Type:       domain.FindingCTRAnomaly,
		Severity:   domain.SeverityMedium,
		ResourceID: c.ID,
		Message:    fmt.Sprintf("CTR dropped to %.4f from average %.4f (ratio: %.2f)", ctr, avg, ratio),
		Observed:   ctr,
		Reference:  avg,
		Ratio:      ratio,
	}, true
}

func (d *Detector) clickVolume(c domain.Campaign, snap *domain.Snapshot, _ domain.Baselines) (domain.Finding, bool) {
	clicks, ok := snap.Value(domain.FieldClicks)
	if !ok || clicks <= d.th.SuspiciousClicks {
		return domain.Finding{}, false
	}
	return domain.Finding{
		Type:       domain.FindingHighClickVolume,
		Severity:   domain.SeverityMedium,
		ResourceID: c.ID,
		Message:    fmt.Sprintf("Suspicious click volume: %.0f in last 24h (threshold %.0f)", clicks, d.th.SuspiciousClicks),
		Observed:   clicks,
		Reference:  d.th.SuspiciousClicks,
	}, true
}

func (d *Detector) budgetBreach(c domain.Campaign, snap *domain.Snapshot, _ domain.Baselines) (domain.Finding, bool) {
	if !c.HasDailyBudget() {
		return domain.Finding{}, false
	}
	spend, ok := snap.Value(domain.FieldSpend)
	if !ok {
		return domain.Finding{}, false
	}
	budget := *c.DailyBudget
	ratio := spend / budget
	if ratio <= d.th.BudgetBreach {
		return domain.Finding{}, false
	}
	return domain.Finding{
		Type:       domain.FindingBudgetBreach,
		Severity:   domain.SeverityHigh,
		ResourceID: c.ID,
		Message:    fmt.Sprintf("Campaign spent %.2f vs daily budget %.2f (ratio: %.2f)", spend, budget, ratio),
		Observed:   spend,
		Reference:  budget,
		Ratio:      ratio,
	}, true
}
