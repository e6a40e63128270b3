package db

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ads-firewall/internal/core/domain"
	"ads-firewall/internal/core/port/mocks"
)

func TestSeedBaselines(t *testing.T) {
	store := mocks.NewMockBaselineStore(t)
	store.EXPECT().Set(mock.Anything, domain.MetricDailySpend, "c1", 150.0).Return(nil).Once()
	store.EXPECT().Set(mock.Anything, domain.MetricCTR, "c1", 0.02).Return(nil).Once()

	n, err := SeedBaselines(context.Background(), store, strings.NewReader(`
baselines:
  - metric: daily_spend
    resource_id: c1
    value: 150
  - metric: ctr
    resource_id: c1
    value: 0.02
`))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSeedBaselinesRejectsBeforeWriting(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown metric", "baselines:\n  - {metric: cpm, resource_id: c1, value: 1}\n"},
		{"missing resource", "baselines:\n  - {metric: ctr, value: 1}\n"},
		{"negative value", "baselines:\n  - {metric: clicks, resource_id: c1, value: -4}\n"},
		{"unknown key", "baseline:\n  - {metric: clicks, resource_id: c1, value: 4}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockBaselineStore(t)
			_, err := SeedBaselines(context.Background(), store, strings.NewReader(tt.doc))
			require.Error(t, err)
			store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSeedBaselinesStoreFailure(t *testing.T) {
	store := mocks.NewMockBaselineStore(t)
	store.EXPECT().Set(mock.Anything, domain.MetricClicks, "c1", 10.0).Return(nil).Once()
	store.EXPECT().Set(mock.Anything, domain.MetricClicks, "c2", 20.0).Return(errors.New("disk full")).Once()

	n, err := SeedBaselines(context.Background(), store, strings.NewReader(`
baselines:
  - {metric: clicks, resource_id: c1, value: 10}
  - {metric: clicks, resource_id: c2, value: 20}
`))
	require.Error(t, err)
	assert.Equal(t, 1, n)
}

func TestSeedBaselinesEmpty(t *testing.T) {
	store := mocks.NewMockBaselineStore(t)
	n, err := SeedBaselines(context.Background(), store, strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, n)
}
