package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radar-hub/techradar-backend/internal/radar/domain"
)

func setupTestCache(t *testing.T) (*SnapshotCache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewSnapshotCache(client, time.Minute), mr
}

func TestSnapshotCacheMiss(t *testing.T) {
	c, _ := setupTestCache(t)

	view, err := c.Get(context.Background())
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestSnapshotCacheRoundTrip(t *testing.T) {
	c, _ := setupTestCache(t)
	ctx := context.Background()

	stored := &domain.RadarView{
		Quadrants: []domain.Quadrant{{ID: 1, Name: "Tools"}},
		Rings:     []domain.Ring{{ID: 1, Name: "Adopt"}},
		Cells: []domain.RadarCell{
			{Quadrant: 0, Ring: 0, Technologies: []domain.Technology{{ID: 1, Name: "Docker", Tags: []string{}}}},
		},
		Unclassified: []domain.Technology{},
		GeneratedAt:  time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, c.Set(ctx, stored))

	got, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestSnapshotCacheInvalidate(t *testing.T) {
	c, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, &domain.RadarView{}))
	require.NoError(t, c.Invalidate(ctx))

	_, err := c.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestSnapshotCacheEntryExpires(t *testing.T) {
	c, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, &domain.RadarView{}))
	mr.FastForward(2 * time.Minute)

	_, err := c.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}
