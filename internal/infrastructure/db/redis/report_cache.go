package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/peoplehub/employee-api/internal/core/ports"
)

const (
	avgSalaryKey     = "report:avg_salary"
	defaultReportTTL = 5 * time.Minute
)

// ReportCache caches the avg-salary aggregation result in Redis. The entry
// is deleted on every employee mutation, so a short TTL is only a backstop.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a ReportCache wrapping the given Redis client.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = defaultReportTTL
	}
	return &ReportCache{client: client, ttl: ttl}
}

// GetAverageSalaries returns the cached report and whether it was present.
func (c *ReportCache) GetAverageSalaries(ctx context.Context) ([]ports.DepartmentAverage, bool, error) {
	raw, err := c.client.Get(ctx, avgSalaryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("report cache get: %w", err)
	}

	var rows []ports.DepartmentAverage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, false, fmt.Errorf("report cache decode: %w", err)
	}
	return rows, true, nil
}

// SetAverageSalaries stores the report (expires after the configured TTL).
func (c *ReportCache) SetAverageSalaries(ctx context.Context, rows []ports.DepartmentAverage) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("report cache encode: %w", err)
	}
	return c.client.Set(ctx, avgSalaryKey, raw, c.ttl).Err()
}

// Invalidate drops the cached report.
func (c *ReportCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, avgSalaryKey).Err()
}
