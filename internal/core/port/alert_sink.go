package port

import (
	"context"

	"ads-firewall/internal/core/domain"
)

// AlertSink records and delivers findings. Record never fails from the
// caller's point of view; implementations log their own errors.
type AlertSink interface {
	Record(ctx context.Context, finding domain.Finding)
}

// AlertRepository persists alerts.
type AlertRepository interface {
	Save(ctx context.Context, alert domain.Alert) error
	// Recent returns up to limit alerts, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Alert, error)
}

// Notifier delivers an alert over one channel (chat, email, SMS, ...).
type Notifier interface {
	Name() string
	Notify(ctx context.Context, alert domain.Alert) error
}
