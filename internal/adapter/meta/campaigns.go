package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"strconv"
	"strings"

	"ads-firewall/internal/core/domain"
)

const (
	campaignFields = "id,name,status,effective_status,daily_budget,lifetime_budget,objective"
	pageLimit      = "1000"
	// maxPages stops runaway paging on an API that keeps returning next links.
	maxPages = 100
)

type campaignDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	Objective       string `json:"objective"`
	DailyBudget     string `json:"daily_budget"`
	LifetimeBudget  string `json:"lifetime_budget"`
}

type campaignPage struct {
	Data   []campaignDTO `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

// ListActiveCampaigns returns every campaign of accountID whose effective
// status is one of the configured statuses, following pagination.
func (c *Client) ListActiveCampaigns(ctx context.Context, accountID string) ([]domain.Campaign, error) {
	statuses, err := json.Marshal(c.statuses)
	if err != nil {
		return nil, fmt.Errorf("encode effective_status: %w", err)
	}
	next := c.endpoint(accountID+"/campaigns", url.Values{
		"fields":           {campaignFields},
		"effective_status": {string(statuses)},
		"limit":            {pageLimit},
	})

	var out []domain.Campaign
	for page := 0; next != ""; page++ {
		if page == c.maxPages {
			c.logger.Warn("campaign paging cut off, remaining campaigns are not scanned",
				slog.String("account_id", accountID),
				slog.Int("pages", page),
				slog.Int("campaigns", len(out)),
			)
			break
		}
		var p campaignPage
		if err = c.get(ctx, "list_campaigns", next, &p); err != nil {
			return nil, fmt.Errorf("list campaigns of %s: %w", accountID, err)
		}
		for _, dto := range p.Data {
			out = append(out, c.toCampaign(dto))
		}
		next = p.Paging.Next
	}
	return out, nil
}

func (c *Client) toCampaign(dto campaignDTO) domain.Campaign {
	return domain.Campaign{
		ID:              dto.ID,
		Name:            dto.Name,
		Status:          dto.Status,
		EffectiveStatus: dto.EffectiveStatus,
		Objective:       dto.Objective,
		DailyBudget:     c.budget(dto.DailyBudget),
		LifetimeBudget:  c.budget(dto.LifetimeBudget),
	}
}

// budget parses a Graph budget string. Budgets are reported in the minor unit
// of the account currency unless configured otherwise.
func (c *Client) budget(raw string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return nil
	}
	if c.minorUnits {
		v /= 100
	}
	return &v
}
