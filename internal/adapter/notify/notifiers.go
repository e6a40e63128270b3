package notify

import (
	"log/slog"
	"net/http"
	"time"

	"ads-firewall/internal/config/configs"
	"ads-firewall/internal/core/port"
)

const deliveryTimeout = 10 * time.Second

// FromConfig returns the log notifier followed by every channel enabled in
// cfg.
func FromConfig(cfg configs.Alerts, logger *slog.Logger) []port.Notifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = deliveryTimeout
	}
	client := &http.Client{Timeout: timeout}

	notifiers := []port.Notifier{NewLogNotifier(logger)}
	if cfg.Email.Enabled {
		notifiers = append(notifiers, NewEmailNotifier(cfg.Email, cfg.Contacts, timeout))
	}
	if cfg.Slack.Enabled {
		notifiers = append(notifiers, NewSlackNotifier(client, cfg.Slack.WebhookURL))
	}
	if cfg.SMS.Enabled {
		notifiers = append(notifiers, NewSMSNotifier(client, cfg.SMS, cfg.Contacts))
	}
	return notifiers
}
