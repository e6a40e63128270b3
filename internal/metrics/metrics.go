package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scan loop metrics
var (
	ScansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_firewall_scans_total",
			Help: "Total number of scan cycles by outcome",
		},
		[]string{"status"}, // ok/failed/panic
	)

	ScanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ads_firewall_scan_duration_seconds",
			Help:    "Scan cycle duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10), // 500ms to ~4min
		},
	)

	CampaignsScanned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ads_firewall_campaigns_scanned_total",
			Help: "Total number of campaigns fully processed",
		},
	)

	CampaignFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_firewall_campaign_failures_total",
			Help: "Total number of per-campaign failures",
		},
		[]string{"stage"},
	)
)

// Detection and remediation metrics
var (
	FindingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_firewall_findings_total",
			Help: "Total number of findings produced by the detector",
		},
		[]string{"type", "severity"},
	)

	PausesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_firewall_pauses_total",
			Help: "Total number of campaign pause attempts",
		},
		[]string{"result"}, // ok/failed/dry_run
	)
)

// Upstream API metrics
var (
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_firewall_upstream_requests_total",
			Help: "Total number of ads platform API requests",
		},
		[]string{"operation", "result"},
	)

	UpstreamLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ads_firewall_upstream_request_duration_seconds",
			Help:    "Ads platform API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// Storage and delivery metrics
var (
	BaselineWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_firewall_baseline_writes_total",
			Help: "Total number of baseline writes",
		},
		[]string{"result"},
	)

	AlertsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_firewall_alerts_recorded_total",
			Help: "Total number of alerts persisted",
		},
		[]string{"result"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_firewall_notifications_total",
			Help: "Total number of alert notifications sent",
		},
		[]string{"channel", "result"},
	)
)

// Result label values.
const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)
