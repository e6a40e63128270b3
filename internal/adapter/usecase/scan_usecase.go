package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"ads-firewall/internal/core/domain"
	"ads-firewall/internal/core/port"
	"ads-firewall/internal/metrics"
)

// defaultStoreTimeout bounds a baseline store call when ScanConfig leaves
// StoreTimeout unset.
const defaultStoreTimeout = 10 * time.Second

// ScanConfig holds the orchestrator settings. It is copied into the Scanner
// and never changed afterwards.
type ScanConfig struct {
	AccountID   string
	Interval    time.Duration
	Concurrency int
	DryRun      bool

	// BaselineMode is domain.BaselineReplace or domain.BaselineEMA.
	BaselineMode string
	EMAAlpha     float64
	// StoreTimeout bounds every single baseline read or write.
	StoreTimeout time.Duration
}

// Report summarises one scan cycle.
type Report struct {
	ID         string    `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Campaigns int `json:"campaigns"`
	Scanned   int `json:"scanned"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`

	Findings              map[domain.FindingType]int `json:"findings"`
	PausesAttempted       int                        `json:"pauses_attempted"`
	PausesSucceeded       int                        `json:"pauses_succeeded"`
	BaselineWriteFailures int                        `json:"baseline_write_failures"`

	// Interrupted is set when a stop signal arrived before every campaign
	// was processed.
	Interrupted bool `json:"interrupted"`
}

// campaignResult is what processing a single campaign contributes to the
// cycle report.
type campaignResult struct {
	done             bool
	skipped          bool
	failed           bool
	findings         []domain.FindingType
	pausesAttempted  int
	pausesSucceeded  int
	baselineFailures int
}

// Scanner drives scan cycles: it lists campaigns, and for each one fetches
// a snapshot, detects anomalies, applies the remediation policy, records
// findings and finally refreshes the baselines.
type Scanner struct {
	source    port.MetricsSource
	actuator  port.CampaignActuator
	baselines port.BaselineStore
	sink      port.AlertSink

	detector *Detector
	policy   Policy
	cfg      ScanConfig
	logger   *slog.Logger
	now      func() time.Time

	mu   sync.RWMutex
	last *Report
}

// NewScanner wires the orchestrator. Concurrency below 1 is treated as 1.
func NewScanner(
	source port.MetricsSource,
	actuator port.CampaignActuator,
	baselines port.BaselineStore,
	sink port.AlertSink,
	th domain.Thresholds,
	cfg ScanConfig,
	logger *slog.Logger,
) *Scanner {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.BaselineMode == "" {
		cfg.BaselineMode = domain.BaselineReplace
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = defaultStoreTimeout
	}
	return &Scanner{
		source:    source,
		actuator:  actuator,
		baselines: baselines,
		sink:      sink,
		detector:  NewDetector(th),
		policy:    NewPolicy(th),
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// SetClock replaces the time source. Tests use it to pin the insight window.
func (s *Scanner) SetClock(now func() time.Time) {
	s.now = now
}

// LastReport returns the report of the most recent completed cycle.
func (s *Scanner) LastReport() (Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return Report{}, false
	}
	return *s.last, true
}

// Run executes a cycle immediately and then once per interval until ctx is
// cancelled. Cancellation never interrupts a campaign that is being
// processed; the current cycle stops before the next campaign and no new
// cycle is started. Cycle failures, including panics, are logged and the
// loop carries on.
func (s *Scanner) Run(ctx context.Context) error {
	if s.cfg.Interval <= 0 {
		return errors.New("scan interval must be positive")
	}
	if s.cfg.BaselineMode == domain.BaselineReplace {
		s.logger.Warn("baseline mode is replace: a sustained anomaly becomes the baseline of the next cycle")
	}
	s.logger.Info("scanner started",
		slog.String("account_id", s.cfg.AccountID),
		slog.Duration("interval", s.cfg.Interval),
		slog.Int("concurrency", s.cfg.Concurrency),
		slog.Bool("dry_run", s.cfg.DryRun),
	)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		s.runSafely(ctx)
		if ctx.Err() != nil {
			s.logger.Info("scanner stopped")
			return nil
		}
		select {
		case <-ctx.Done():
			s.logger.Info("scanner stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (s *Scanner) runSafely(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			metrics.ScansTotal.WithLabelValues("panic").Inc()
			s.logger.Error("scan cycle panicked", slog.Any("panic", r))
		}
	}()
	if _, err := s.RunCycle(ctx); err != nil {
		s.logger.Error("scan cycle failed", slog.Any("error", err))
	}
}

// RunCycle performs one full pass over the account's campaigns. It returns
// an error only when the campaign list cannot be fetched; every per-campaign
// problem is logged and counted in the report instead.
func (s *Scanner) RunCycle(ctx context.Context) (Report, error) {
	rep := Report{
		ID:        uuid.NewString(),
		StartedAt: s.now(),
		Findings:  make(map[domain.FindingType]int),
	}
	log := s.logger.With(slog.String("cycle_id", rep.ID))
	log.Info("scan cycle started")

	// Upstream calls run on a context that a stop signal cannot cancel, so
	// a campaign is never abandoned half way. Each call carries its own
	// timeout.
	work := context.WithoutCancel(ctx)

	campaigns, err := s.source.ListActiveCampaigns(work, s.cfg.AccountID)
	if err != nil {
		metrics.ScansTotal.WithLabelValues(metrics.ResultFailed).Inc()
		return rep, fmt.Errorf("list campaigns: %w", err)
	}
	rep.Campaigns = len(campaigns)

	until := s.now()
	since := until.AddDate(0, 0, -1)

	var interrupted atomic.Bool
	results := make([]campaignResult, len(campaigns))
	g := new(errgroup.Group)
	g.SetLimit(s.cfg.Concurrency)
	for i, c := range campaigns {
		if ctx.Err() != nil {
			interrupted.Store(true)
			break
		}
		g.Go(func() error {
			// a slot may free up only after the stop signal arrived
			if ctx.Err() != nil {
				interrupted.Store(true)
				return nil
			}
			results[i] = s.scanCampaignSafely(work, c, since, until, log)
			return nil
		})
	}
	_ = g.Wait()
	rep.Interrupted = interrupted.Load()

	for _, r := range results {
		if !r.done {
			continue
		}
		switch {
		case r.failed:
			rep.Failed++
		case r.skipped:
			rep.Skipped++
		default:
			rep.Scanned++
		}
		for _, t := range r.findings {
			rep.Findings[t]++
		}
		rep.PausesAttempted += r.pausesAttempted
		rep.PausesSucceeded += r.pausesSucceeded
		rep.BaselineWriteFailures += r.baselineFailures
	}
	rep.FinishedAt = s.now()

	metrics.ScansTotal.WithLabelValues(metrics.ResultOK).Inc()
	metrics.ScanDuration.Observe(rep.FinishedAt.Sub(rep.StartedAt).Seconds())

	s.mu.Lock()
	s.last = &rep
	s.mu.Unlock()

	log.Info("scan cycle completed",
		slog.Int("campaigns", rep.Campaigns),
		slog.Int("scanned", rep.Scanned),
		slog.Int("skipped", rep.Skipped),
		slog.Int("failed", rep.Failed),
		slog.Int("pauses", rep.PausesSucceeded),
		slog.Bool("interrupted", rep.Interrupted),
	)
	return rep, nil
}

func (s *Scanner) scanCampaignSafely(ctx context.Context, c domain.Campaign, since, until time.Time, log *slog.Logger) (res campaignResult) {
	log = log.With(slog.String("campaign_id", c.ID))
	defer func() {
		if r := recover(); r != nil {
			metrics.CampaignFailures.WithLabelValues("panic").Inc()
			log.Error("campaign processing panicked", slog.Any("panic", r))
			res = campaignResult{done: true, failed: true}
		}
	}()
	return s.scanCampaign(ctx, c, since, until, log)
}

func (s *Scanner) scanCampaign(ctx context.Context, c domain.Campaign, since, until time.Time, log *slog.Logger) campaignResult {
	res := campaignResult{done: true}

	snap, err := s.source.GetInsights(ctx, c.ID, domain.InsightFields, since, until)
	if err != nil {
		metrics.CampaignFailures.WithLabelValues("fetch_snapshot").Inc()
		log.Warn("fetch insights failed", slog.Any("error", err))
		res.failed = true
		return res
	}
	if snap == nil {
		log.Debug("no insights for window")
		res.skipped = true
		return res
	}

	baselines := s.loadBaselines(ctx, c.ID, log)

	for _, f := range s.detector.Detect(c, snap, baselines) {
		metrics.FindingsTotal.WithLabelValues(string(f.Type), string(f.Severity)).Inc()
		res.findings = append(res.findings, f.Type)

		action := s.policy.Decide(f)
		log.Warn("anomaly detected",
			slog.String("type", string(f.Type)),
			slog.String("severity", string(f.Severity)),
			slog.String("action", action.String()),
			slog.String("evidence", f.Message),
		)
		s.sink.Record(ctx, f)

		if action == ActionPause {
			res.pausesAttempted++
			if s.pause(ctx, c, f, log) {
				res.pausesSucceeded++
			}
		}
	}

	res.baselineFailures = s.updateBaselines(ctx, c.ID, snap, baselines, log)
	metrics.CampaignsScanned.Inc()
	return res
}

// loadBaselines reads every known baseline of a campaign. A read failure
// leaves the metric absent so the affected rules abstain.
func (s *Scanner) loadBaselines(ctx context.Context, campaignID string, log *slog.Logger) domain.Baselines {
	out := make(domain.Baselines, len(domain.BaselineMetrics))
	for _, m := range domain.BaselineMetrics {
		callCtx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
		v, ok, err := s.baselines.Get(callCtx, m, campaignID)
		cancel()
		if err != nil {
			metrics.CampaignFailures.WithLabelValues("read_baseline").Inc()
			log.Warn("baseline read failed, treating as absent",
				slog.String("metric", string(m)), slog.Any("error", err))
			continue
		}
		if ok {
			out[m] = v
		}
	}
	return out
}

// updateBaselines writes this cycle's observations, whether or not they
// were anomalous. It returns the number of failed writes.
func (s *Scanner) updateBaselines(ctx context.Context, campaignID string, snap *domain.Snapshot, prev domain.Baselines, log *slog.Logger) int {
	failures := 0
	for _, m := range domain.BaselineMetrics {
		v, ok := snap.Value(domain.BaselineSources[m])
		if !ok {
			continue
		}
		v = s.nextBaseline(m, v, prev)
		callCtx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
		err := s.baselines.Set(callCtx, m, campaignID, v)
		cancel()
		if err != nil {
			failures++
			metrics.BaselineWrites.WithLabelValues(metrics.ResultFailed).Inc()
			log.Warn("baseline write failed",
				slog.String("metric", string(m)), slog.Any("error", err))
			continue
		}
		metrics.BaselineWrites.WithLabelValues(metrics.ResultOK).Inc()
	}
	return failures
}

func (s *Scanner) nextBaseline(m domain.Metric, current float64, prev domain.Baselines) float64 {
	if s.cfg.BaselineMode != domain.BaselineEMA {
		return current
	}
	old, ok := prev.Get(m)
	if !ok {
		return current
	}
	a := s.cfg.EMAAlpha
	return a*current + (1-a)*old
}

func (s *Scanner) pause(ctx context.Context, c domain.Campaign, f domain.Finding, log *slog.Logger) bool {
	reason := fmt.Sprintf("Critical spending spike: %.2fx normal", f.Ratio)
	if s.cfg.DryRun {
		metrics.PausesTotal.WithLabelValues("dry_run").Inc()
		log.Warn("dry run, campaign not paused", slog.String("reason", reason))
		return false
	}
	if err := s.actuator.Pause(ctx, c.ID); err != nil {
		metrics.PausesTotal.WithLabelValues(metrics.ResultFailed).Inc()
		metrics.CampaignFailures.WithLabelValues("pause").Inc()
		log.Error("pause campaign failed", slog.Any("error", err))
		return false
	}
	metrics.PausesTotal.WithLabelValues(metrics.ResultOK).Inc()
	log.Warn("campaign paused", slog.String("reason", reason))

	s.sink.Record(ctx, domain.Finding{
		Type:       domain.FindingCampaignPaused,
		Severity:   domain.SeverityHigh,
		ResourceID: c.ID,
		Message:    "Campaign paused: " + reason,
		Observed:   f.Observed,
		Reference:  f.Reference,
		Ratio:      f.Ratio,
	})
	return true
}
