package mysql

import (
	"context"
	"errors"

	"Tieba_Community/internal/model"

	"gorm.io/gorm"
)

// CommentExpAward is added to the author's experience when a comment is
// created, in the same transaction as the insert.
const CommentExpAward = 5

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return addExp(tx, comment.AuthorID, CommentExpAward)
	})
}

func (r *CommentRepository) FindByID(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := r.DB.WithContext(ctx).First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost pages a thread oldest first. Like counts come from the
// comment_likes relation, not the stored counter.
func (r *CommentRepository) ListByPost(ctx context.Context, postID, callerID uint64, offset, limit int) ([]model.CommentView, error) {
	var list []model.CommentView
	err := r.DB.WithContext(ctx).Raw(`
		SELECT c.id, c.post_id, c.content, c.author_id, c.reply_to, c.created_at,
		       u.name AS author_name,
		       (SELECT COUNT(*) FROM comment_likes cl WHERE cl.comment_id = c.id) AS like_count,
		       EXISTS(SELECT 1 FROM comment_likes cm WHERE cm.comment_id = c.id AND cm.user_id = ?) AS liked_by_me
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = ?
		ORDER BY c.created_at ASC, c.id ASC
		LIMIT ? OFFSET ?`, callerID, postID, limit, offset).
		Scan(&list).Error
	return list, err
}
