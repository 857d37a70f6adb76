package mysql

import (
	"context"
	"time"

	"Tieba_Community/internal/model"

	"gorm.io/gorm"
)

type StatsRepository struct {
	DB *gorm.DB
}

// Snapshot runs the five counts in one transaction. That keeps them from
// interleaving with this connection's own writes, but it is not a
// point-in-time snapshot under concurrent writers; the numbers are
// consistent enough for a dashboard. "Today" starts at local midnight,
// computed here so the query stays dialect-neutral.
func (r *StatsRepository) Snapshot(ctx context.Context) (*model.Stats, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var stats model.Stats
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).Count(&stats.TotalPosts).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.User{}).Count(&stats.TotalUsers).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Comment{}).Count(&stats.TotalComments).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Post{}).
			Where("created_at >= ?", dayStart).
			Count(&stats.PostsToday).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).
			Where("created_at >= ?", dayStart).
			Count(&stats.UsersToday).Error
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
