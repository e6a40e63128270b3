package domain

import "time"

// Metric is the key a baseline is stored under.
type Metric string

const (
	MetricDailySpend  Metric = "daily_spend"
	MetricCTR         Metric = "ctr"
	MetricClicks      Metric = "clicks"
	MetricImpressions Metric = "impressions"
)

// Baseline update modes. In replace mode the latest observation overwrites
// the stored value; in ema mode it is blended with it.
const (
	BaselineReplace = "replace"
	BaselineEMA     = "ema"
)

// BaselineSources maps every baselined metric to the snapshot field it is
// derived from.
var BaselineSources = map[Metric]Field{
	MetricDailySpend:  FieldSpend,
	MetricCTR:         FieldCTR,
	MetricClicks:      FieldClicks,
	MetricImpressions: FieldImpressions,
}

// BaselineMetrics lists baselined metrics in a stable order.
var BaselineMetrics = []Metric{MetricDailySpend, MetricCTR, MetricClicks, MetricImpressions}

// Baseline is the stored reference value for one metric of one resource.
// There is at most one live record per (Metric, ResourceID).
type Baseline struct {
	Metric     Metric    `json:"metric" yaml:"metric"`
	ResourceID string    `json:"resource_id" yaml:"resource_id"`
	Value      float64   `json:"value" yaml:"value"`
	UpdatedAt  time.Time `json:"updated_at" yaml:"-"`
}

// Baselines is the set of baselines known for one resource at the start of
// a detection pass. A missing key means "no baseline yet", which is distinct
// from a stored zero.
type Baselines map[Metric]float64

// Get returns the baseline for m and whether one exists.
func (b Baselines) Get(m Metric) (float64, bool) {
	v, ok := b[m]
	return v, ok
}
