package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"Tieba_Community/internal/model"

	"github.com/redis/go-redis/v9"
)

const (
	hotBarKeyPrefix = "cache:hotbars"
	hotBarTTL       = 30 * time.Second
)

// HotBarCacheRepository caches the hot-bar ranking per limit. Misses fall
// through to MySQL and backfill; a short TTL keeps staleness bounded without
// any invalidation wiring on the write path.
type HotBarCacheRepository struct {
	ttl time.Duration
}

func NewHotBarCacheRepository() *HotBarCacheRepository {
	return &HotBarCacheRepository{ttl: hotBarTTL}
}

func (r *HotBarCacheRepository) key(limit int) string {
	return fmt.Sprintf("%s:%d", hotBarKeyPrefix, limit)
}

// Get returns (bars, true, nil) on a hit and (nil, false, nil) on a miss.
func (r *HotBarCacheRepository) Get(ctx context.Context, limit int) ([]model.HotBar, bool, error) {
	raw, err := Client.Get(ctx, r.key(limit)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var bars []model.HotBar
	if err := json.Unmarshal(raw, &bars); err != nil {
		// Corrupt entry: drop it and report a miss.
		_ = Client.Del(ctx, r.key(limit)).Err()
		return nil, false, nil
	}
	return bars, true, nil
}

func (r *HotBarCacheRepository) Set(ctx context.Context, limit int, bars []model.HotBar) error {
	raw, err := json.Marshal(bars)
	if err != nil {
		return err
	}
	return Client.Set(ctx, r.key(limit), raw, r.ttl).Err()
}
