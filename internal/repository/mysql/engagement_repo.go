package mysql

import (
	"context"
	"encoding/json"
	"time"

	"Tieba_Community/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Experience awarded to an author the first time someone likes their row.
// Never clawed back on unlike.
const (
	CommentLikeExpAward = 1
	PostLikeExpAward    = 2
)

// EngagementRepository owns every like/follow flip. Each toggle is one
// transaction: the relation row, the denormalized counter (comments only),
// the author's experience, and the outbox row move together or not at all.
//
// Both branches are single conditional statements — delete first, and if
// nothing was deleted, insert with ON CONFLICT DO NOTHING — so there is no
// read-then-write window for two concurrent toggles to squeeze through.
type EngagementRepository struct {
	DB *gorm.DB
}

func (r *EngagementRepository) ToggleCommentLike(ctx context.Context, userID, commentID uint64) (liked bool, likes int64, err error) {
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND comment_id = ?", userID, commentID).
			Delete(&model.CommentLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			if err := tx.Model(&model.Comment{}).
				Where("id = ?", commentID).
				UpdateColumn("likes", gorm.Expr("CASE WHEN likes > 0 THEN likes - 1 ELSE 0 END")).
				Error; err != nil {
				return err
			}
			if err := insertOutbox(tx, "comment_unlike", userID, commentID); err != nil {
				return err
			}
		} else {
			ins := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&model.CommentLike{UserID: userID, CommentID: commentID})
			if ins.Error != nil {
				return ins.Error
			}
			liked = true
			if ins.RowsAffected > 0 {
				if err := tx.Model(&model.Comment{}).
					Where("id = ?", commentID).
					UpdateColumn("likes", gorm.Expr("likes + 1")).
					Error; err != nil {
					return err
				}
				var comment model.Comment
				if err := tx.Select("id", "author_id").First(&comment, commentID).Error; err != nil {
					return err
				}
				if err := addExp(tx, comment.AuthorID, CommentLikeExpAward); err != nil {
					return err
				}
				if err := insertOutbox(tx, "comment_like", userID, commentID); err != nil {
					return err
				}
			}
		}
		// Read the authoritative count back inside the same unit of work.
		return tx.Model(&model.CommentLike{}).
			Where("comment_id = ?", commentID).
			Count(&likes).Error
	})
	return liked, likes, err
}

func (r *EngagementRepository) TogglePostLike(ctx context.Context, userID, postID uint64) (liked bool, likes int64, err error) {
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&model.PostLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			if err := insertOutbox(tx, "post_unlike", userID, postID); err != nil {
				return err
			}
		} else {
			ins := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&model.PostLike{UserID: userID, PostID: postID})
			if ins.Error != nil {
				return ins.Error
			}
			liked = true
			if ins.RowsAffected > 0 {
				var post model.Post
				if err := tx.Select("id", "author_id").First(&post, postID).Error; err != nil {
					return err
				}
				if err := addExp(tx, post.AuthorID, PostLikeExpAward); err != nil {
					return err
				}
				if err := insertOutbox(tx, "post_like", userID, postID); err != nil {
					return err
				}
			}
		}
		return tx.Model(&model.PostLike{}).
			Where("post_id = ?", postID).
			Count(&likes).Error
	})
	return liked, likes, err
}

// Follow inserts the (user, bar) row. An existing row is not an error: the
// insert does nothing and changed comes back false.
func (r *EngagementRepository) Follow(ctx context.Context, userID, barID uint64) (changed bool, err error) {
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.BarFollow{UserID: userID, BarID: barID})
		if ins.Error != nil {
			return ins.Error
		}
		if ins.RowsAffected == 0 {
			return nil
		}
		changed = true
		return insertOutbox(tx, "follow", userID, barID)
	})
	return changed, err
}

// Unfollow deletes the row and reports whether one was actually removed.
func (r *EngagementRepository) Unfollow(ctx context.Context, userID, barID uint64) (changed bool, err error) {
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND bar_id = ?", userID, barID).
			Delete(&model.BarFollow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		changed = true
		return insertOutbox(tx, "unfollow", userID, barID)
	})
	return changed, err
}

func (r *EngagementRepository) IsFollowing(ctx context.Context, userID, barID uint64) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.BarFollow{}).
		Where("user_id = ? AND bar_id = ?", userID, barID).
		Count(&n).Error
	return n > 0, err
}

func insertOutbox(tx *gorm.DB, event string, actorID, targetID uint64) error {
	payload, _ := json.Marshal(map[string]any{
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"actor":      actorID,
		"target":     targetID,
	})
	return tx.Create(&model.EngagementOutbox{
		EventType: event,
		ActorID:   actorID,
		TargetID:  targetID,
		Payload:   string(payload),
	}).Error
}
