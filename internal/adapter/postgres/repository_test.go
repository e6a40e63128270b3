package postgres

import (
	"context"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ads-firewall/db/migrations"
	"ads-firewall/internal/config/configs"
	"ads-firewall/internal/core/domain"
	"ads-firewall/internal/core/port"
	"ads-firewall/internal/db"
)

// newTestPool connects to the database named by PSQL_TEST_ADDRESS and applies
// migrations. The test is skipped when the variable is unset.
func newTestPool(t *testing.T) *BaselineRepository {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(migrations.Postgres, addr))

	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewBaselineRepository(pool)
}

func TestBaselineRepository(t *testing.T) {
	repo := newTestPool(t)
	ctx := context.Background()
	id := "it-" + uuid.NewString()

	_, ok, err := repo.Get(ctx, domain.MetricDailySpend, id)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.Lookup(ctx, domain.MetricDailySpend, id)
	assert.ErrorIs(t, err, port.ErrNotFound)

	require.NoError(t, repo.Set(ctx, domain.MetricDailySpend, id, 100))
	require.NoError(t, repo.Set(ctx, domain.MetricDailySpend, id, 0))

	v, ok, err := repo.Get(ctx, domain.MetricDailySpend, id)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, v)

	b, err := repo.Lookup(ctx, domain.MetricDailySpend, id)
	require.NoError(t, err)
	assert.Equal(t, id, b.ResourceID)
	assert.False(t, b.UpdatedAt.IsZero())
}

func TestAlertRepository(t *testing.T) {
	repo := NewAlertRepository(newTestPool(t).pool)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	older := domain.Alert{ID: uuid.NewString(), Type: domain.FindingCTRAnomaly, Severity: domain.SeverityMedium,
		ResourceID: "c1", Message: "ctr", CreatedAt: now.Add(time.Hour)}
	newer := domain.Alert{ID: uuid.NewString(), Type: domain.FindingSpendingSpike, Severity: domain.SeverityHigh,
		ResourceID: "c1", Message: "spend", Ratio: 3.5, CreatedAt: now.Add(2 * time.Hour)}
	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	got, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, 3.5, got[0].Ratio)
	assert.Equal(t, older.ID, got[1].ID)
}
