package redisadapter

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ads-firewall/internal/config/configs"
	"ads-firewall/internal/core/domain"
	"ads-firewall/internal/core/port"
)

func TestDecodeBaseline(t *testing.T) {
	b, err := decodeBaseline(domain.MetricCTR, "c1", map[string]string{
		fieldValue:     "0.0125",
		fieldUpdatedAt: "1773144000",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0125, b.Value)
	assert.Equal(t, time.Unix(1773144000, 0).UTC(), b.UpdatedAt)

	_, err = decodeBaseline(domain.MetricCTR, "c1", map[string]string{})
	assert.ErrorIs(t, err, port.ErrNotFound)

	_, err = decodeBaseline(domain.MetricCTR, "c1", map[string]string{fieldValue: "abc"})
	assert.Error(t, err)
}

func TestKeyLayout(t *testing.T) {
	s := NewBaselineStore(nil, "fw")
	assert.Equal(t, "fw:baseline:daily_spend:120", s.key(domain.MetricDailySpend, "120"))
}

func TestBaselineStoreRoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	client, err := NewClient(ctx, configs.Redis{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	s := NewBaselineStore(client, "test-"+uuid.NewString())

	_, ok, err := s.Get(ctx, domain.MetricDailySpend, "c1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, domain.MetricDailySpend, "c1", 100))
	require.NoError(t, s.Set(ctx, domain.MetricDailySpend, "c1", 0))

	v, ok, err := s.Get(ctx, domain.MetricDailySpend, "c1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, v)

	b, err := s.Lookup(ctx, domain.MetricDailySpend, "c1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), b.UpdatedAt, time.Minute)
}
