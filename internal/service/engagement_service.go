package service

import (
	"context"
	"errors"

	"Tieba_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

// ToggleResult is what a like flip reports back: the caller's state after
// the flip and the authoritative count read in the same unit of work.
type ToggleResult struct {
	Liked bool
	Likes int64
}

type EngagementService struct {
	repo *mysql.EngagementRepository
}

func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{repo: &mysql.EngagementRepository{DB: db}}
}

func (s *EngagementService) ToggleCommentLike(ctx context.Context, callerID, commentID uint64) (*ToggleResult, error) {
	if callerID == 0 || commentID == 0 {
		return nil, errors.New("invalid id")
	}
	liked, likes, err := s.repo.ToggleCommentLike(ctx, callerID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, errors.New("comment not found")
		}
		return nil, err
	}
	return &ToggleResult{Liked: liked, Likes: likes}, nil
}

func (s *EngagementService) TogglePostLike(ctx context.Context, callerID, postID uint64) (*ToggleResult, error) {
	if callerID == 0 || postID == 0 {
		return nil, errors.New("invalid id")
	}
	liked, likes, err := s.repo.TogglePostLike(ctx, callerID, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, errors.New("post not found")
		}
		return nil, err
	}
	return &ToggleResult{Liked: liked, Likes: likes}, nil
}

// FollowBar reports false when the caller already follows the bar; that is
// not an error.
func (s *EngagementService) FollowBar(ctx context.Context, callerID, barID uint64) (bool, error) {
	if callerID == 0 || barID == 0 {
		return false, errors.New("invalid id")
	}
	return s.repo.Follow(ctx, callerID, barID)
}

// UnfollowBar reports whether a follow row was actually removed.
func (s *EngagementService) UnfollowBar(ctx context.Context, callerID, barID uint64) (bool, error) {
	if callerID == 0 || barID == 0 {
		return false, errors.New("invalid id")
	}
	return s.repo.Unfollow(ctx, callerID, barID)
}

func (s *EngagementService) IsFollowing(ctx context.Context, callerID, barID uint64) (bool, error) {
	if callerID == 0 || barID == 0 {
		return false, errors.New("invalid id")
	}
	return s.repo.IsFollowing(ctx, callerID, barID)
}
