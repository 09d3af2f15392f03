// Package cache stores composed reports in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/report"
)

const keyPrefix = "reports"

// reportCache implements adapter.ReportCache.
//
// Keys embed a per-user version number. Invalidate bumps the version so
// every older key becomes unreachable and expires on its own TTL. Writes go
// under the version returned by the preceding read, never the current one.
type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a Redis-backed report cache.
func NewReportCache(client *redis.Client, ttl time.Duration) adapter.ReportCache {
	return &reportCache{client: client, ttl: ttl}
}

func versionKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:version", keyPrefix, userID)
}

func monthlyKey(userID uuid.UUID, version adapter.CacheVersion, month, year int) string {
	return fmt.Sprintf("%s:%s:v%d:monthly:%04d-%02d", keyPrefix, userID, version, year, month)
}

func yearlyKey(userID uuid.UUID, version adapter.CacheVersion, year int) string {
	return fmt.Sprintf("%s:%s:v%d:yearly:%04d", keyPrefix, userID, version, year)
}

func (c *reportCache) version(ctx context.Context, userID uuid.UUID) (adapter.CacheVersion, error) {
	v, err := c.client.Get(ctx, versionKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read cache version: %w", err)
	}
	return adapter.CacheVersion(v), nil
}

// GetMonthly returns the cached monthly report, or nil on a miss, together
// with the version it was looked up under.
func (c *reportCache) GetMonthly(ctx context.Context, userID uuid.UUID, month, year int) (*report.MonthlyReport, adapter.CacheVersion, error) {
	v, err := c.version(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	var monthly report.MonthlyReport
	found, err := c.get(ctx, monthlyKey(userID, v, month, year), &monthly)
	if err != nil || !found {
		return nil, v, err
	}
	return &monthly, v, nil
}

// SetMonthly stores a monthly report under version.
func (c *reportCache) SetMonthly(ctx context.Context, userID uuid.UUID, version adapter.CacheVersion, monthly *report.MonthlyReport) error {
	return c.set(ctx, monthlyKey(userID, version, monthly.Period.Month, monthly.Period.Year), monthly)
}

// GetYearly returns the cached yearly report, or nil on a miss, together with
// the version it was looked up under.
func (c *reportCache) GetYearly(ctx context.Context, userID uuid.UUID, year int) (*report.YearlyReport, adapter.CacheVersion, error) {
	v, err := c.version(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	var yearly report.YearlyReport
	found, err := c.get(ctx, yearlyKey(userID, v, year), &yearly)
	if err != nil || !found {
		return nil, v, err
	}
	return &yearly, v, nil
}

// SetYearly stores a yearly report under version.
func (c *reportCache) SetYearly(ctx context.Context, userID uuid.UUID, version adapter.CacheVersion, yearly *report.YearlyReport) error {
	return c.set(ctx, yearlyKey(userID, version, yearly.Period.Year), yearly)
}

// Invalidate drops every cached report of the user.
func (c *reportCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Incr(ctx, versionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to bump cache version: %w", err)
	}
	return nil
}

func (c *reportCache) get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cached report: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		// A payload from an older layout is treated as a miss
		return false, nil
	}
	return true, nil
}

func (c *reportCache) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache report: %w", err)
	}
	return nil
}
