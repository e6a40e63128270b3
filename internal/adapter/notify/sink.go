package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ads-firewall/internal/core/domain"
	"ads-firewall/internal/core/port"
	"ads-firewall/internal/metrics"
)

// Sink implements port.AlertSink. Every finding is persisted first and then
// handed to each notifier in turn. The save and each delivery get their own
// timeout. Failures are logged and counted; they never reach the caller.
type Sink struct {
	repo      port.AlertRepository
	notifiers []port.Notifier
	timeout   time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewSink builds a sink. repo may be nil, in which case alerts are only
// delivered. A non-positive timeout falls back to deliveryTimeout.
func NewSink(repo port.AlertRepository, notifiers []port.Notifier, timeout time.Duration, logger *slog.Logger) *Sink {
	if timeout <= 0 {
		timeout = deliveryTimeout
	}
	return &Sink{
		repo:      repo,
		notifiers: notifiers,
		timeout:   timeout,
		logger:    logger,
		now:       time.Now,
	}
}

// Record persists and delivers f.
func (s *Sink) Record(ctx context.Context, f domain.Finding) {
	alert := domain.Alert{
		ID:         uuid.NewString(),
		Type:       f.Type,
		Severity:   f.Severity,
		ResourceID: f.ResourceID,
		Message:    f.Message,
		Ratio:      f.Ratio,
		CreatedAt:  s.now().UTC(),
	}
	log := s.logger.With(
		slog.String("alert_id", alert.ID),
		slog.String("type", string(alert.Type)),
		slog.String("resource_id", alert.ResourceID),
	)

	if s.repo != nil {
		saveCtx, cancel := context.WithTimeout(ctx, s.timeout)
		err := s.repo.Save(saveCtx, alert)
		cancel()
		if err != nil {
			metrics.AlertsRecorded.WithLabelValues(metrics.ResultFailed).Inc()
			log.Error("persist alert failed", slog.Any("error", err))
		} else {
			metrics.AlertsRecorded.WithLabelValues(metrics.ResultOK).Inc()
		}
	}

	for _, n := range s.notifiers {
		if err := s.deliver(ctx, n, alert); err != nil {
			metrics.NotificationsTotal.WithLabelValues(n.Name(), metrics.ResultFailed).Inc()
			log.Error("alert notification failed", slog.String("channel", n.Name()), slog.Any("error", err))
			continue
		}
		metrics.NotificationsTotal.WithLabelValues(n.Name(), metrics.ResultOK).Inc()
	}
}

func (s *Sink) deliver(ctx context.Context, n port.Notifier, alert domain.Alert) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return n.Notify(ctx, alert)
}
