package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ads-firewall/internal/core/domain"
)

const dateLayout = "2006-01-02"

type actionDTO struct {
	ActionType string          `json:"action_type"`
	Value      json.RawMessage `json:"value"`
}

// GetInsights fetches the campaign's performance for [since, until]. The
// window is sent as calendar dates in the caller's time zone. An empty
// result set yields a nil snapshot.
func (c *Client) GetInsights(ctx context.Context, campaignID string, fields []domain.Field, since, until time.Time) (*domain.Snapshot, error) {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	timeRange, err := json.Marshal(map[string]string{
		"since": since.Format(dateLayout),
		"until": until.Format(dateLayout),
	})
	if err != nil {
		return nil, fmt.Errorf("encode time_range: %w", err)
	}
	endpoint := c.endpoint(campaignID+"/insights", url.Values{
		"fields":     {strings.Join(names, ",")},
		"time_range": {string(timeRange)},
	})

	var resp struct {
		Data []map[string]json.RawMessage `json:"data"`
	}
	if err = c.get(ctx, "get_insights", endpoint, &resp); err != nil {
		return nil, fmt.Errorf("insights of campaign %s: %w", campaignID, err)
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return toSnapshot(campaignID, since, until, fields, resp.Data[0]), nil
}

func toSnapshot(campaignID string, since, until time.Time, fields []domain.Field, row map[string]json.RawMessage) *domain.Snapshot {
	snap := &domain.Snapshot{
		CampaignID: campaignID,
		Since:      since,
		Until:      until,
		Values:     make(map[domain.Field]float64, len(fields)),
	}
	for _, f := range fields {
		raw, ok := row[string(f)]
		if !ok {
			continue
		}
		if f == domain.FieldActions {
			actions, total := parseActions(raw)
			if actions != nil {
				snap.Actions = actions
				snap.Values[domain.FieldActions] = total
			}
			continue
		}
		if v, ok := parseNumber(raw); ok {
			snap.Values[f] = v
		}
	}
	return snap
}

func parseActions(raw json.RawMessage) (map[string]float64, float64) {
	var list []actionDTO
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, 0
	}
	out := make(map[string]float64, len(list))
	var total float64
	for _, a := range list {
		v, ok := parseNumber(a.Value)
		if !ok || a.ActionType == "" {
			continue
		}
		out[a.ActionType] += v
		total += v
	}
	return out, total
}

// parseNumber accepts both JSON numbers and numeric strings, which is how the
// Graph API reports most metrics.
func parseNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
