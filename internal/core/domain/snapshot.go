package domain

import (
	"math"
	"time"
)

// Field names a numeric insight requested from the metrics source.
type Field string

const (
	FieldSpend       Field = "spend"
	FieldImpressions Field = "impressions"
	FieldClicks      Field = "clicks"
	FieldCTR         Field = "ctr"
	FieldActions     Field = "actions"
)

// InsightFields is the canonical insight field list requested each cycle.
var InsightFields = []Field{FieldSpend, FieldImpressions, FieldClicks, FieldCTR, FieldActions}

// Snapshot is the performance of one campaign over the lookback window. It is
// fetched fresh every cycle and never persisted as-is. Fields the upstream did
// not report are simply missing from Values.
type Snapshot struct {
	CampaignID string
	Since      time.Time
	Until      time.Time
	Values     map[Field]float64
	// Actions holds per-action-type counts (e.g. "link_click").
	Actions map[string]float64
}

// Value returns the observation for f. The second result is false when the
// field is absent or not a finite number.
func (s *Snapshot) Value(f Field) (float64, bool) {
	if s == nil || s.Values == nil {
		return 0, false
	}
	v, ok := s.Values[f]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
