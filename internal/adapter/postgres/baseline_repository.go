package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ads-firewall/internal/core/domain"
	"ads-firewall/internal/core/port"
)

// BaselineRepository implements port.BaselineStore on the normal_patterns
// table.
type BaselineRepository struct {
	pool *pgxpool.Pool
}

// NewBaselineRepository returns a new repository instance.
func NewBaselineRepository(pool *pgxpool.Pool) *BaselineRepository {
	return &BaselineRepository{pool: pool}
}

// Get returns the stored baseline. A missing row is reported through the
// present result, not as an error.
func (r *BaselineRepository) Get(ctx context.Context, metric domain.Metric, resourceID string) (float64, bool, error) {
	var value float64
	err := r.pool.QueryRow(ctx,
		`SELECT value FROM normal_patterns WHERE metric_type = $1 AND resource_id = $2`,
		string(metric), resourceID,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("select baseline %s/%s: %w", metric, resourceID, err)
	}
	return value, true, nil
}

// Set upserts the baseline in a single statement.
func (r *BaselineRepository) Set(ctx context.Context, metric domain.Metric, resourceID string, value float64) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO normal_patterns (metric_type, resource_id, value, calculated_at)
        VALUES ($1, $2, $3, now())
        ON CONFLICT (metric_type, resource_id)
        DO UPDATE SET value = EXCLUDED.value, calculated_at = EXCLUDED.calculated_at`,
		string(metric), resourceID, value)
	if err != nil {
		return fmt.Errorf("upsert baseline %s/%s: %w", metric, resourceID, err)
	}
	return nil
}

// Lookup returns the full baseline record, or port.ErrNotFound.
func (r *BaselineRepository) Lookup(ctx context.Context, metric domain.Metric, resourceID string) (domain.Baseline, error) {
	b := domain.Baseline{Metric: metric, ResourceID: resourceID}
	err := r.pool.QueryRow(ctx,
		`SELECT value, calculated_at FROM normal_patterns WHERE metric_type = $1 AND resource_id = $2`,
		string(metric), resourceID,
	).Scan(&b.Value, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Baseline{}, notFound(metric, resourceID)
	}
	if err != nil {
		return domain.Baseline{}, fmt.Errorf("select baseline %s/%s: %w", metric, resourceID, err)
	}
	return b, nil
}

func notFound(metric domain.Metric, resourceID string) error {
	return fmt.Errorf("baseline %s/%s: %w", metric, resourceID, port.ErrNotFound)
}
