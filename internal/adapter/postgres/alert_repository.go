package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ads-firewall/internal/core/domain"
)

// AlertRepository implements port.AlertRepository on the security_alerts
// table.
type AlertRepository struct {
	pool *pgxpool.Pool
}

// NewAlertRepository returns a new repository instance.
func NewAlertRepository(pool *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{pool: pool}
}

// Save inserts the alert. Alerts are append-only.
func (r *AlertRepository) Save(ctx context.Context, a domain.Alert) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO security_alerts (id, alert_type, severity, resource_id, message, ratio, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, string(a.Type), string(a.Severity), a.ResourceID, a.Message, a.Ratio, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// Recent returns up to limit alerts, newest first.
func (r *AlertRepository) Recent(ctx context.Context, limit int) ([]domain.Alert, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id::text, alert_type, severity, resource_id, message, ratio, created_at
        FROM security_alerts
        ORDER BY created_at DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("select alerts: %w", err)
	}
	alerts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Alert, error) {
		var a domain.Alert
		err := row.Scan(&a.ID, &a.Type, &a.Severity, &a.ResourceID, &a.Message, &a.Ratio, &a.CreatedAt)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan alerts: %w", err)
	}
	return alerts, nil
}
