package db

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"ads-firewall/internal/core/domain"
	"ads-firewall/internal/core/port"
)

type seedFile struct {
	Baselines []domain.Baseline `yaml:"baselines"`
}

// SeedBaselines imports baselines from a YAML document of the form
//
//	baselines:
//	  - metric: daily_spend
//	    resource_id: "120200000000001"
//	    value: 150
//
// and writes each one through store, replacing whatever is stored. The whole
// document is validated before the first write. It returns the number of
// baselines written.
func SeedBaselines(ctx context.Context, store port.BaselineStore, r io.Reader) (int, error) {
	var doc seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	for i, b := range doc.Baselines {
		if _, ok := domain.BaselineSources[b.Metric]; !ok {
			return 0, fmt.Errorf("baseline %d: unknown metric %q", i, b.Metric)
		}
		if b.ResourceID == "" {
			return 0, fmt.Errorf("baseline %d: resource_id is required", i)
		}
		if math.IsNaN(b.Value) || math.IsInf(b.Value, 0) || b.Value < 0 {
			return 0, fmt.Errorf("baseline %d: invalid value %v", i, b.Value)
		}
	}

	for i, b := range doc.Baselines {
		if err := store.Set(ctx, b.Metric, b.ResourceID, b.Value); err != nil {
			return i, fmt.Errorf("seed %s/%s: %w", b.Metric, b.ResourceID, err)
		}
	}
	return len(doc.Baselines), nil
}
