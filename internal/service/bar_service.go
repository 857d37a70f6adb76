package service

import (
	"context"
	"errors"

	"Tieba_Community/internal/model"
	"Tieba_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type BarService struct {
	repo *mysql.BarRepository
}

func NewBarService(db *gorm.DB) *BarService {
	return &BarService{repo: &mysql.BarRepository{DB: db}}
}

// CreateBar inserts the bar and the owner's auto-follow as one unit of work.
func (s *BarService) CreateBar(ctx context.Context, name string, ownerID uint64) (*model.Bar, error) {
	if name == "" {
		return nil, errors.New("bar name required")
	}
	if ownerID == 0 {
		return nil, errors.New("invalid owner id")
	}

	bar := &model.Bar{Name: name, OwnerID: ownerID}
	if err := s.repo.Create(ctx, bar); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return bar, nil
}

func (s *BarService) GetBarByName(ctx context.Context, name string) (*model.Bar, error) {
	return s.repo.FindByName(ctx, name)
}
