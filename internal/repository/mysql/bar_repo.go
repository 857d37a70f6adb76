package mysql

import (
	"context"
	"errors"

	"Tieba_Community/internal/model"

	"gorm.io/gorm"
)

type BarRepository struct {
	DB *gorm.DB
}

// Create inserts the bar and the owner's follow row in one transaction. A
// bar without its owner-follow is never observable.
func (r *BarRepository) Create(ctx context.Context, bar *model.Bar) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bar).Error; err != nil {
			return err
		}
		return tx.Create(&model.BarFollow{UserID: bar.OwnerID, BarID: bar.ID}).Error
	})
}

// FindByName returns (nil, nil) when no bar has that name.
func (r *BarRepository) FindByName(ctx context.Context, name string) (*model.Bar, error) {
	var bar model.Bar
	err := r.DB.WithContext(ctx).Where("name = ?", name).First(&bar).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bar, nil
}

func (r *BarRepository) FindByID(ctx context.Context, id uint64) (*model.Bar, error) {
	var bar model.Bar
	err := r.DB.WithContext(ctx).First(&bar, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bar, nil
}

// HotBars ranks bars by post count. Ties go to the older bar (id ASC) so the
// ordering is deterministic.
func (r *BarRepository) HotBars(ctx context.Context, limit int) ([]model.HotBar, error) {
	var list []model.HotBar
	err := r.DB.WithContext(ctx).Raw(`
		SELECT b.id, b.name, COUNT(p.id) AS post_count
		FROM bars b
		LEFT JOIN posts p ON p.bar_id = b.id
		GROUP BY b.id, b.name
		ORDER BY post_count DESC, b.id ASC
		LIMIT ?`, limit).Scan(&list).Error
	return list, err
}

// FollowedBars lists the bars one user follows, unpaginated.
func (r *BarRepository) FollowedBars(ctx context.Context, userID uint64) ([]model.Bar, error) {
	var list []model.Bar
	err := r.DB.WithContext(ctx).Raw(`
		SELECT b.id, b.name, b.owner_id, b.created_at
		FROM bar_follows f
		JOIN bars b ON b.id = f.bar_id
		WHERE f.user_id = ?
		ORDER BY f.id ASC`, userID).Scan(&list).Error
	return list, err
}
