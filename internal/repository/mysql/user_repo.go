package mysql

import (
	"context"
	"errors"

	"Tieba_Community/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

// FindByName returns (nil, nil) when no identity has that name.
func (r *UserRepository) FindByName(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("name = ?", name).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// addExp is the single place experience changes. Always called on a
// transaction handle, never on the root DB.
func addExp(tx *gorm.DB, userID uint64, delta int64) error {
	return tx.Model(&model.User{}).
		Where("id = ?", userID).
		UpdateColumn("exp", gorm.Expr("exp + ?", delta)).Error
}
