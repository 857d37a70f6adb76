package service

import (
	"context"
	"errors"
	"strings"

	"Tieba_Community/internal/model"
	"Tieba_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

// detailCommentCap is how many leading comments ride along on a post detail
// read, matching the desktop client's thread view.
const detailCommentCap = 100

type PostService struct {
	repo     *mysql.PostRepository
	comments *mysql.CommentRepository
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{
		repo:     &mysql.PostRepository{DB: db},
		comments: &mysql.CommentRepository{DB: db},
	}
}

// CreatePost inserts the post and awards the author's experience in one
// unit of work.
func (s *PostService) CreatePost(ctx context.Context, barID uint64, title, content string, authorID uint64) (*model.Post, error) {
	if title == "" {
		return nil, errors.New("title required")
	}
	if barID == 0 || authorID == 0 {
		return nil, errors.New("invalid id")
	}

	post := &model.Post{
		BarID:    barID,
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPostByID is the bare row lookup; (nil, nil) when absent.
func (s *PostService) GetPostByID(ctx context.Context, id uint64) (*model.Post, error) {
	return s.repo.FindByID(ctx, id)
}

// GetPostDetail returns the enriched post plus its first comment page, or
// (nil, nil) when the post does not exist.
func (s *PostService) GetPostDetail(ctx context.Context, postID, callerID uint64) (*model.PostDetail, error) {
	view, err := s.repo.FindViewByID(ctx, postID, callerID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, nil
	}
	comments, err := s.comments.ListByPost(ctx, postID, callerID, 0, detailCommentCap)
	if err != nil {
		return nil, err
	}
	return &model.PostDetail{PostView: *view, Comments: comments}, nil
}

// ListPostsInBar pages newest first; 1-based pages, past-the-end is empty.
func (s *PostService) ListPostsInBar(ctx context.Context, barID, callerID uint64, page, size int) ([]model.PostView, error) {
	page, size = normalizePage(page, size, 20)
	return s.repo.ListByBar(ctx, barID, callerID, (page-1)*size, size)
}

func (s *PostService) ListLatestPosts(ctx context.Context, callerID uint64, page, size int) ([]model.PostView, error) {
	page, size = normalizePage(page, size, 20)
	return s.repo.ListLatest(ctx, callerID, (page-1)*size, size)
}

// SearchPosts matches the query case-insensitively against title or body.
func (s *PostService) SearchPosts(ctx context.Context, query string, callerID uint64) ([]model.PostView, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.PostView{}, nil
	}
	return s.repo.Search(ctx, query, callerID)
}

func normalizePage(page, size, defaultSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = defaultSize
	}
	return page, size
}
