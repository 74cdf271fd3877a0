package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/radar-hub/techradar-backend/internal/radar/domain"
	"github.com/redis/go-redis/v9"
)

const (
	// Key for the assembled radar view: radar:snapshot:v1
	snapshotKey = "radar:snapshot:v1"

	defaultSnapshotTTL = 5 * time.Minute
)

// SnapshotCache stores the assembled radar view in Redis so the common read
// path does not rebuild it on every request. It is an optimization, never a
// source of truth: the in-memory store always holds the latest state and a
// missing or failing cache degrades to a direct rebuild.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCache creates a SnapshotCache with the given TTL; a zero TTL
// falls back to the default.
func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}
	return &SnapshotCache{client: client, ttl: ttl}
}

// Get retrieves the cached radar view. A cache miss is reported as
// domain.ErrSnapshotNotFound.
func (c *SnapshotCache) Get(ctx context.Context) (*domain.RadarView, error) {
	data, err := c.client.Get(ctx, snapshotKey).Result()
	if err == redis.Nil {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get radar snapshot: %w", err)
	}

	var view domain.RadarView
	if err := json.Unmarshal([]byte(data), &view); err != nil {
		return nil, fmt.Errorf("failed to unmarshal radar snapshot: %w", err)
	}
	return &view, nil
}

// Set stores the radar view with the configured TTL.
func (c *SnapshotCache) Set(ctx context.Context, view *domain.RadarView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to marshal radar snapshot: %w", err)
	}

	if err := c.client.Set(ctx, snapshotKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store radar snapshot: %w", err)
	}
	return nil
}

// Invalidate drops the cached view; the next read rebuilds it.
func (c *SnapshotCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate radar snapshot: %w", err)
	}
	return nil
}
