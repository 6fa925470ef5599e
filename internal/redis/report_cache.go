package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ReportCache fronts point reads of live reports. Entries carry a short TTL
// and every mutation invalidates, so a stale view never outlives the TTL.
type ReportCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewReportCache(r *Redis, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ReportCache{client: r.Client, ttl: ttl}
}

func (c *ReportCache) key(id uuid.UUID) string {
	return "reports:view:" + id.String()
}

// Get returns (nil, nil) on a miss.
func (c *ReportCache) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *ReportCache) Set(ctx context.Context, report *domain.Report) error {
	b, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(report.ID), b, c.ttl).Err()
}

func (c *ReportCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return c.client.Del(ctx, c.key(id)).Err()
}
