package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"ads-firewall/internal/core/domain"
	"ads-firewall/internal/core/port"
)

// BaselineRepository implements port.BaselineStore and port.BaselineReader
// on the normal_patterns table of a local database file.
type BaselineRepository struct {
	db *sqlx.DB
}

// NewBaselineRepository returns a new repository instance.
func NewBaselineRepository(db *sqlx.DB) *BaselineRepository {
	return &BaselineRepository{db: db}
}

type baselineRow struct {
	Metric       string    `db:"metric_type"`
	ResourceID   string    `db:"resource_id"`
	Value        float64   `db:"value"`
	CalculatedAt time.Time `db:"calculated_at"`
}

// Get reports a missing baseline through the present result.
func (r *BaselineRepository) Get(ctx context.Context, metric domain.Metric, resourceID string) (float64, bool, error) {
	var value float64
	err := r.db.GetContext(ctx, &value,
		`SELECT value FROM normal_patterns WHERE metric_type = ? AND resource_id = ?`,
		string(metric), resourceID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("select baseline %s/%s: %w", metric, resourceID, err)
	}
	return value, true, nil
}

// Set upserts the baseline in a single statement.
func (r *BaselineRepository) Set(ctx context.Context, metric domain.Metric, resourceID string, value float64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO normal_patterns (metric_type, resource_id, value, calculated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (metric_type, resource_id)
		DO UPDATE SET value = excluded.value, calculated_at = excluded.calculated_at`,
		string(metric), resourceID, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert baseline %s/%s: %w", metric, resourceID, err)
	}
	return nil
}

// Lookup returns the full record, or an error wrapping port.ErrNotFound.
func (r *BaselineRepository) Lookup(ctx context.Context, metric domain.Metric, resourceID string) (domain.Baseline, error) {
	var row baselineRow
	err := r.db.GetContext(ctx, &row,
		`SELECT metric_type, resource_id, value, calculated_at FROM normal_patterns
		 WHERE metric_type = ? AND resource_id = ?`,
		string(metric), resourceID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Baseline{}, fmt.Errorf("baseline %s/%s: %w", metric, resourceID, port.ErrNotFound)
	}
	if err != nil {
		return domain.Baseline{}, fmt.Errorf("select baseline %s/%s: %w", metric, resourceID, err)
	}
	return domain.Baseline{
		Metric:     domain.Metric(row.Metric),
		ResourceID: row.ResourceID,
		Value:      row.Value,
		UpdatedAt:  row.CalculatedAt,
	}, nil
}
