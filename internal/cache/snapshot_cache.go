package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"managerdocs/internal/contextwin"
)

// SnapshotCache keeps recently assembled context snapshots per person. A
// short-lived dirty marker set on every write path keeps a stale snapshot
// from being served right after an edit.
type SnapshotCache struct {
	client         *redisv9.Client
	snapshotTTL    time.Duration
	dirtyMarkerTTL time.Duration
}

func NewSnapshotCache(client *redisv9.Client, snapshotTTL, dirtyMarkerTTL time.Duration) *SnapshotCache {
	if snapshotTTL <= 0 {
		snapshotTTL = 60 * time.Second
	}
	if dirtyMarkerTTL <= 0 {
		dirtyMarkerTTL = 5 * time.Second
	}
	return &SnapshotCache{
		client:         client,
		snapshotTTL:    snapshotTTL,
		dirtyMarkerTTL: dirtyMarkerTTL,
	}
}

func (c *SnapshotCache) GetSnapshot(ctx context.Context, personID uint) (*contextwin.Snapshot, bool, error) {
	raw, err := c.client.Get(ctx, c.snapshotKey(personID)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get snapshot failed: %w", err)
	}

	var snap contextwin.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached snapshot failed: %w", err)
	}
	return &snap, true, nil
}

func (c *SnapshotCache) SetSnapshot(ctx context.Context, personID uint, snap *contextwin.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.snapshotKey(personID), payload, c.snapshotTTL).Err(); err != nil {
		return fmt.Errorf("redis set snapshot failed: %w", err)
	}
	return nil
}

func (c *SnapshotCache) DeleteSnapshot(ctx context.Context, personID uint) error {
	if err := c.client.Del(ctx, c.snapshotKey(personID)).Err(); err != nil {
		return fmt.Errorf("redis delete snapshot failed: %w", err)
	}
	return nil
}

func (c *SnapshotCache) MarkDirty(ctx context.Context, personID uint) error {
	if err := c.client.Set(ctx, c.dirtyKey(personID), "1", c.dirtyMarkerTTL).Err(); err != nil {
		return fmt.Errorf("redis set dirty marker failed: %w", err)
	}
	return nil
}

func (c *SnapshotCache) IsDirty(ctx context.Context, personID uint) (bool, error) {
	exists, err := c.client.Exists(ctx, c.dirtyKey(personID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis check dirty marker failed: %w", err)
	}
	return exists > 0, nil
}

func (c *SnapshotCache) snapshotKey(personID uint) string {
	return fmt.Sprintf("context:snapshot:%d", personID)
}

func (c *SnapshotCache) dirtyKey(personID uint) string {
	return fmt.Sprintf("context:snapshot:dirty:%d", personID)
}
