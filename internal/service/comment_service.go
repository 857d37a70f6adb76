package service

import (
	"context"
	"errors"

	"Tieba_Community/internal/model"
	"Tieba_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type CommentService struct {
	repo *mysql.CommentRepository
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{repo: &mysql.CommentRepository{DB: db}}
}

// CreateComment inserts the comment and awards the author's experience in
// one unit of work. replyTo optionally names the identity being answered.
func (s *CommentService) CreateComment(ctx context.Context, postID uint64, content string, authorID uint64, replyTo *uint64) (*model.Comment, error) {
	if content == "" {
		return nil, errors.New("content required")
	}
	if postID == 0 || authorID == 0 {
		return nil, errors.New("invalid id")
	}

	comment := &model.Comment{
		PostID:   postID,
		Content:  content,
		AuthorID: authorID,
		ReplyTo:  replyTo,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListCommentsInPost pages a thread in chronological order.
func (s *CommentService) ListCommentsInPost(ctx context.Context, postID, callerID uint64, page, size int) ([]model.CommentView, error) {
	page, size = normalizePage(page, size, 50)
	return s.repo.ListByPost(ctx, postID, callerID, (page-1)*size, size)
}
