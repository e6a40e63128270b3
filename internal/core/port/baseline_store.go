package port

import (
	"context"
	"errors"

	"ads-firewall/internal/core/domain"
)

// ErrNotFound is returned by lookups that address a missing record when the
// method has no separate "present" result.
var ErrNotFound = errors.New("not found")

// BaselineStore is the durable (metric, resource) → value mapping. It is an
// outbound port; implementations must write each key atomically.
type BaselineStore interface {
	// Get returns the stored value for the key. present is false when no
	// baseline exists yet; a stored zero is returned as (0, true, nil).
	Get(ctx context.Context, metric domain.Metric, resourceID string) (value float64, present bool, err error)
	// Set replaces the value for the key. It never blends with a previous
	// value.
	Set(ctx context.Context, metric domain.Metric, resourceID string, value float64) error
}

// BaselineReader exposes full baseline records to read-only consumers.
type BaselineReader interface {
	// Lookup returns the record for the key or an error wrapping ErrNotFound.
	Lookup(ctx context.Context, metric domain.Metric, resourceID string) (domain.Baseline, error)
}
