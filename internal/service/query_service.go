package service

import (
	"context"
	"errors"

	"Tieba_Community/internal/model"
	"Tieba_Community/internal/repository/mysql"
	"Tieba_Community/internal/repository/redis"

	"gorm.io/gorm"
)

type QueryService struct {
	bars  *mysql.BarRepository
	stats *mysql.StatsRepository
	cache *redis.HotBarCacheRepository // nil disables caching
}

func NewQueryService(db *gorm.DB, cache *redis.HotBarCacheRepository) *QueryService {
	return &QueryService{
		bars:  &mysql.BarRepository{DB: db},
		stats: &mysql.StatsRepository{DB: db},
		cache: cache,
	}
}

func (s *QueryService) GetStats(ctx context.Context) (*model.Stats, error) {
	return s.stats.Snapshot(ctx)
}

// GetHotBars serves from the cache when possible and backfills on a miss.
// Cache trouble degrades to a direct read, it never fails the request.
func (s *QueryService) GetHotBars(ctx context.Context, limit int) ([]model.HotBar, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	if s.cache != nil {
		if bars, hit, err := s.cache.Get(ctx, limit); err == nil && hit {
			return bars, nil
		}
	}
	bars, err := s.bars.HotBars(ctx, limit)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, limit, bars)
	}
	return bars, nil
}

func (s *QueryService) GetFollowedBars(ctx context.Context, callerID uint64) ([]model.Bar, error) {
	if callerID == 0 {
		return nil, errors.New("invalid id")
	}
	return s.bars.FollowedBars(ctx, callerID)
}
