package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ads-firewall/internal/adapter/usecase"
	"ads-firewall/internal/core/domain"
	"ads-firewall/internal/core/port"
	"ads-firewall/internal/core/port/mocks"
)

type staticReports struct {
	rep *usecase.Report
}

func (s staticReports) LastReport() (usecase.Report, bool) {
	if s.rep == nil {
		return usecase.Report{}, false
	}
	return *s.rep, true
}

type fixture struct {
	alerts    *mocks.MockAlertRepository
	baselines *mocks.MockBaselineReader
	reports   staticReports
}

func newFixture(t *testing.T) *fixture {
	return &fixture{
		alerts:    mocks.NewMockAlertRepository(t),
		baselines: mocks.NewMockBaselineReader(t),
	}
}

func (f *fixture) do(method, target string) *httptest.ResponseRecorder {
	h := NewHandler(f.alerts, f.baselines, f.reports, slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	rec := newFixture(t).do(http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	rec := newFixture(t).do(http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRecentAlerts(t *testing.T) {
	created := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{"default limit", "", defaultAlertLimit},
		{"explicit limit", "?limit=5", 5},
		{"capped limit", "?limit=100000", maxAlertLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.alerts.EXPECT().Recent(mock.Anything, tt.wantLimit).Return([]domain.Alert{{
				ID: "a1", Type: domain.FindingSpendingSpike, Severity: domain.SeverityHigh,
				ResourceID: "c1", Message: "spike", Ratio: 3.5, CreatedAt: created,
			}}, nil).Once()

			rec := f.do(http.MethodGet, "/api/v1/alerts"+tt.query)
			require.Equal(t, http.StatusOK, rec.Code)

			var got []domain.Alert
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.Len(t, got, 1)
			assert.Equal(t, domain.FindingSpendingSpike, got[0].Type)
			assert.True(t, created.Equal(got[0].CreatedAt))
		})
	}
}

func TestRecentAlertsEmptyIsArray(t *testing.T) {
	f := newFixture(t)
	f.alerts.EXPECT().Recent(mock.Anything, defaultAlertLimit).Return(nil, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/alerts")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRecentAlertsErrors(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/v1/alerts?limit=-1").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/v1/alerts?limit=abc").Code)

	f.alerts.EXPECT().Recent(mock.Anything, mock.Anything).Return(nil, errors.New("db closed")).Once()
	assert.Equal(t, http.StatusInternalServerError, f.do(http.MethodGet, "/api/v1/alerts").Code)
}

func TestBaseline(t *testing.T) {
	f := newFixture(t)
	f.baselines.EXPECT().Lookup(mock.Anything, domain.MetricDailySpend, "c1").Return(domain.Baseline{
		Metric: domain.MetricDailySpend, ResourceID: "c1", Value: 120.5,
	}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/baselines/daily_spend/c1")
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Baseline
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 120.5, got.Value)
}

func TestBaselineErrors(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/v1/baselines/cpm/c1").Code)

	f.baselines.EXPECT().Lookup(mock.Anything, domain.MetricCTR, "missing").
		Return(domain.Baseline{}, fmt.Errorf("baseline ctr/missing: %w", port.ErrNotFound)).Once()
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/v1/baselines/ctr/missing").Code)

	f.baselines.EXPECT().Lookup(mock.Anything, domain.MetricCTR, "broken").
		Return(domain.Baseline{}, errors.New("io")).Once()
	assert.Equal(t, http.StatusInternalServerError, f.do(http.MethodGet, "/api/v1/baselines/ctr/broken").Code)
}

func TestLastScan(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusNoContent, f.do(http.MethodGet, "/api/v1/scans/last").Code)

	f.reports = staticReports{rep: &usecase.Report{
		ID:        "cycle-1",
		Campaigns: 3,
		Scanned:   2,
		Failed:    1,
		Findings:  map[domain.FindingType]int{domain.FindingCTRAnomaly: 1},
	}}
	rec := f.do(http.MethodGet, "/api/v1/scans/last")
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "cycle-1", got["id"])
	assert.EqualValues(t, 2, got["scanned"])
	assert.Equal(t, map[string]any{"CTR_ANOMALY": float64(1)}, got["findings"])
}
