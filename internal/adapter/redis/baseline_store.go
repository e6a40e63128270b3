package redisadapter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"ads-firewall/internal/config/configs"
	"ads-firewall/internal/core/domain"
	"ads-firewall/internal/core/port"
)

const (
	fieldValue     = "value"
	fieldUpdatedAt = "updated_at"
)

// BaselineStore keeps each baseline in its own hash holding the value and
// the unix time of the last write. It implements port.BaselineStore and
// port.BaselineReader.
type BaselineStore struct {
	client *redis.Client
	prefix string
}

// NewClient connects to Redis and pings it.
func NewClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
	})

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewBaselineStore returns a store writing under the given key prefix.
func NewBaselineStore(client *redis.Client, prefix string) *BaselineStore {
	return &BaselineStore{client: client, prefix: prefix}
}

func (s *BaselineStore) key(metric domain.Metric, resourceID string) string {
	return fmt.Sprintf("%s:baseline:%s:%s", s.prefix, metric, resourceID)
}

func (s *BaselineStore) Get(ctx context.Context, metric domain.Metric, resourceID string) (float64, bool, error) {
	raw, err := s.client.HGet(ctx, s.key(metric, resourceID), fieldValue).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("hget baseline %s/%s: %w", metric, resourceID, err)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse baseline %s/%s: %w", metric, resourceID, err)
	}
	return v, true, nil
}

// Set writes value and timestamp with one HSET, so readers never see a
// half-updated record.
func (s *BaselineStore) Set(ctx context.Context, metric domain.Metric, resourceID string, value float64) error {
	err := s.client.HSet(ctx, s.key(metric, resourceID),
		fieldValue, strconv.FormatFloat(value, 'g', -1, 64),
		fieldUpdatedAt, time.Now().Unix(),
	).Err()
	if err != nil {
		return fmt.Errorf("hset baseline %s/%s: %w", metric, resourceID, err)
	}
	return nil
}

func (s *BaselineStore) Lookup(ctx context.Context, metric domain.Metric, resourceID string) (domain.Baseline, error) {
	fields, err := s.client.HGetAll(ctx, s.key(metric, resourceID)).Result()
	if err != nil {
		return domain.Baseline{}, fmt.Errorf("hgetall baseline %s/%s: %w", metric, resourceID, err)
	}
	return decodeBaseline(metric, resourceID, fields)
}

func decodeBaseline(metric domain.Metric, resourceID string, fields map[string]string) (domain.Baseline, error) {
	raw, ok := fields[fieldValue]
	if !ok {
		return domain.Baseline{}, fmt.Errorf("baseline %s/%s: %w", metric, resourceID, port.ErrNotFound)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return domain.Baseline{}, fmt.Errorf("parse baseline %s/%s: %w", metric, resourceID, err)
	}
	b := domain.Baseline{Metric: metric, ResourceID: resourceID, Value: v}
	if ts, err := strconv.ParseInt(fields[fieldUpdatedAt], 10, 64); err == nil {
		b.UpdatedAt = time.Unix(ts, 0).UTC()
	}
	return b, nil
}
