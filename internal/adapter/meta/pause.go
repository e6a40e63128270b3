package meta

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/cenkalti/backoff/v5"

	"ads-firewall/internal/core/domain"
)

// Pause sets the campaign status to PAUSED. Transient failures are retried
// with exponential backoff; any other failure is returned at once. Pausing a
// paused campaign succeeds.
func (c *Client) Pause(ctx context.Context, campaignID string) error {
	form := url.Values{"status": {domain.StatusPaused}}
	attempt := 0

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		var resp struct {
			Success bool `json:"success"`
		}
		err := c.post(ctx, "pause_campaign", c.endpoint(campaignID, nil), form, &resp)
		if err == nil {
			if !resp.Success {
				return struct{}{}, backoff.Permanent(fmt.Errorf("pause campaign %s: api reported no success", campaignID))
			}
			return struct{}{}, nil
		}
		if !IsTransient(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		c.logger.Warn("pause attempt failed, retrying",
			slog.String("campaign_id", campaignID),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)
		return struct{}{}, err
	},
		backoff.WithBackOff(c.pauseBackOff()),
		backoff.WithMaxTries(c.pauseRetries+1),
	)
	if err != nil {
		return fmt.Errorf("pause campaign %s: %w", campaignID, err)
	}
	return nil
}
