package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"ads-firewall/internal/config/configs"
	"ads-firewall/internal/core/domain"
)

// smsLimit keeps the body within a few SMS segments.
const smsLimit = 480

// SMSNotifier texts the primary phone through Twilio. Only HIGH and CRITICAL
// alerts are sent.
type SMSNotifier struct {
	client *http.Client
	cfg    configs.SMS
	to     string
}

// NewSMSNotifier texts contacts.PrimaryPhone from cfg.From.
func NewSMSNotifier(client *http.Client, cfg configs.SMS, contacts configs.Contacts) *SMSNotifier {
	return &SMSNotifier{client: client, cfg: cfg, to: contacts.PrimaryPhone}
}

func (n *SMSNotifier) Name() string { return "sms" }

// Notify sends urgent alerts and ignores the rest.
func (n *SMSNotifier) Notify(ctx context.Context, a domain.Alert) error {
	if !a.Severity.Urgent() {
		return nil
	}

	body := truncate(FormatMessage(a), smsLimit)
	form := url.Values{
		"To":   {n.to},
		"From": {n.cfg.From},
		"Body": {body},
	}
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json",
		strings.TrimRight(n.cfg.BaseURL, "/"), url.PathEscape(n.cfg.AccountSID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(n.cfg.AccountSID, n.cfg.AuthToken)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("post sms: %w", withoutURL(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("twilio returned %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// truncate cuts s to at most limit bytes without splitting a UTF-8 sequence.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
