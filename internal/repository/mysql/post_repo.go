package mysql

import (
	"context"
	"errors"
	"strings"

	"Tieba_Community/internal/model"

	"gorm.io/gorm"
)

// PostExpAward is added to the author's experience when a post is created,
// in the same transaction as the insert.
const PostExpAward = 10

// SearchCap bounds search results regardless of how broad the query is.
const SearchCap = 100

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return addExp(tx, post.AuthorID, PostExpAward)
	})
}

// FindByID returns (nil, nil) when the post does not exist.
func (r *PostRepository) FindByID(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.WithContext(ctx).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// postViewSQL is the shared enrichment projection: author name from users,
// like count from the relation table (authoritative, never a stored
// counter), comment count, and whether the caller likes the row. A caller id
// of 0 scans every liked_by_me to false.
const postViewSQL = `
	SELECT p.id, p.bar_id, p.title, p.content, p.author_id, p.created_at,
	       u.name AS author_name,
	       (SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = p.id) AS like_count,
	       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count,
	       EXISTS(SELECT 1 FROM post_likes pm WHERE pm.post_id = p.id AND pm.user_id = ?) AS liked_by_me
	FROM posts p
	JOIN users u ON u.id = p.author_id`

// FindViewByID returns the enriched post or (nil, nil).
func (r *PostRepository) FindViewByID(ctx context.Context, id, callerID uint64) (*model.PostView, error) {
	var views []model.PostView
	err := r.DB.WithContext(ctx).
		Raw(postViewSQL+` WHERE p.id = ?`, callerID, id).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}
	return &views[0], nil
}

// ListByBar pages a bar's posts newest first.
func (r *PostRepository) ListByBar(ctx context.Context, barID, callerID uint64, offset, limit int) ([]model.PostView, error) {
	var list []model.PostView
	err := r.DB.WithContext(ctx).
		Raw(postViewSQL+`
			WHERE p.bar_id = ?
			ORDER BY p.created_at DESC, p.id DESC
			LIMIT ? OFFSET ?`, callerID, barID, limit, offset).
		Scan(&list).Error
	return list, err
}

// ListLatest pages all posts newest first, across bars.
func (r *PostRepository) ListLatest(ctx context.Context, callerID uint64, offset, limit int) ([]model.PostView, error) {
	var list []model.PostView
	err := r.DB.WithContext(ctx).
		Raw(postViewSQL+`
			ORDER BY p.created_at DESC, p.id DESC
			LIMIT ? OFFSET ?`, callerID, limit, offset).
		Scan(&list).Error
	return list, err
}

// Search matches the query as an unanchored, case-insensitive substring of
// the title or body.
func (r *PostRepository) Search(ctx context.Context, query string, callerID uint64) ([]model.PostView, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var list []model.PostView
	err := r.DB.WithContext(ctx).
		Raw(postViewSQL+`
			WHERE LOWER(p.title) LIKE ? OR LOWER(p.content) LIKE ?
			ORDER BY p.created_at DESC, p.id DESC
			LIMIT ?`, callerID, pattern, pattern, SearchCap).
		Scan(&list).Error
	return list, err
}
