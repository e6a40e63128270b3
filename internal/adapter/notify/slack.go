package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"ads-firewall/internal/core/domain"
)

// SlackNotifier posts alerts to an incoming webhook.
type SlackNotifier struct {
	client     *http.Client
	webhookURL string
}

// NewSlackNotifier posts to webhookURL through client. The URL carries the
// webhook secret and is never included in returned errors.
func NewSlackNotifier(client *http.Client, webhookURL string) *SlackNotifier {
	return &SlackNotifier{client: client, webhookURL: webhookURL}
}

func (n *SlackNotifier) Name() string { return "slack" }

// Notify posts the formatted alert as the message text.
func (n *SlackNotifier) Notify(ctx context.Context, a domain.Alert) error {
	payload, err := json.Marshal(map[string]string{"text": FormatMessage(a)})
	if err != nil {
		return fmt.Errorf("encode slack payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return errors.New("build slack request: invalid webhook url")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("post slack webhook: %w", withoutURL(err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack webhook returned %s", resp.Status)
	}
	return nil
}

// withoutURL drops the request URL a *url.Error repeats, keeping the cause.
func withoutURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
