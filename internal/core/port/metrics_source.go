package port

import (
	"context"
	"time"

	"ads-firewall/internal/core/domain"
)

// MetricsSource supplies campaigns and their performance snapshots from the
// upstream advertising platform.
type MetricsSource interface {
	// ListActiveCampaigns returns the campaigns of accountID that should be
	// scanned.
	ListActiveCampaigns(ctx context.Context, accountID string) ([]domain.Campaign, error)
	// GetInsights returns the snapshot of campaignID for [since, until]. A nil
	// snapshot with a nil error means the platform has no data for the window.
	GetInsights(ctx context.Context, campaignID string, fields []domain.Field, since, until time.Time) (*domain.Snapshot, error)
}

// CampaignActuator executes mutating actions against upstream campaigns.
// Pausing an already paused campaign must succeed.
type CampaignActuator interface {
	Pause(ctx context.Context, campaignID string) error
}
