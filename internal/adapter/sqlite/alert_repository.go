package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"ads-firewall/internal/core/domain"
)

// AlertRepository implements port.AlertRepository on the security_alerts
// table.
type AlertRepository struct {
	db *sqlx.DB
}

// NewAlertRepository returns a new repository instance.
func NewAlertRepository(db *sqlx.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

type alertRow struct {
	ID         string    `db:"id"`
	Type       string    `db:"alert_type"`
	Severity   string    `db:"severity"`
	ResourceID string    `db:"resource_id"`
	Message    string    `db:"message"`
	Ratio      float64   `db:"ratio"`
	CreatedAt  time.Time `db:"created_at"`
}

// Save inserts the alert with its creation time in UTC. IDs are unique.
func (r *AlertRepository) Save(ctx context.Context, a domain.Alert) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO security_alerts (id, alert_type, severity, resource_id, message, ratio, created_at)
		VALUES (:id, :alert_type, :severity, :resource_id, :message, :ratio, :created_at)`,
		alertRow{
			ID:         a.ID,
			Type:       string(a.Type),
			Severity:   string(a.Severity),
			ResourceID: a.ResourceID,
			Message:    a.Message,
			Ratio:      a.Ratio,
			CreatedAt:  a.CreatedAt.UTC(),
		})
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// Recent returns up to limit alerts, newest first.
func (r *AlertRepository) Recent(ctx context.Context, limit int) ([]domain.Alert, error) {
	var rows []alertRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, alert_type, severity, resource_id, message, ratio, created_at
		FROM security_alerts
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("select alerts: %w", err)
	}
	alerts := make([]domain.Alert, 0, len(rows))
	for _, row := range rows {
		alerts = append(alerts, domain.Alert{
			ID:         row.ID,
			Type:       domain.FindingType(row.Type),
			Severity:   domain.Severity(row.Severity),
			ResourceID: row.ResourceID,
			Message:    row.Message,
			Ratio:      row.Ratio,
			CreatedAt:  row.CreatedAt,
		})
	}
	return alerts, nil
}
