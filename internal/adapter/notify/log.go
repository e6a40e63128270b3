package notify

import (
	"context"
	"log/slog"

	"ads-firewall/internal/core/domain"
)

// LogNotifier writes every alert to the process log. It is always enabled.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier writes alerts to logger at warn level.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Name() string { return "log" }

func (n *LogNotifier) Notify(ctx context.Context, a domain.Alert) error {
	n.logger.LogAttrs(ctx, slog.LevelWarn, "security alert",
		slog.String("alert_id", a.ID),
		slog.String("type", string(a.Type)),
		slog.String("severity", string(a.Severity)),
		slog.String("resource_id", a.ResourceID),
		slog.String("message", a.Message),
	)
	return nil
}
