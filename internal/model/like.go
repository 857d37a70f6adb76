package model

import "time"

type PostLike struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_post"`
	PostID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_post"`
	CreatedAt time.Time

	User *User `json:"-"`
	Post *Post `json:"-"`
}

func (PostLike) TableName() string { return "post_likes" }

type CommentLike struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_comment"`
	CommentID uint64 `gorm:"not null;index;uniqueIndex:uk_user_comment"`
	CreatedAt time.Time

	User    *User    `json:"-"`
	Comment *Comment `json:"-"`
}

func (CommentLike) TableName() string { return "comment_likes" }
