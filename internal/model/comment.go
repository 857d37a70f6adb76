package model

import "time"

// Comment keeps a denormalized Likes counter next to the comment_likes
// relation table. The counter is only ever touched in the same transaction
// as the relation row, so the two cannot drift. ReplyTo names the identity
// being answered, not another comment.
type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"not null;index:idx_post_time,priority:1"`
	Content   string `gorm:"type:text;not null"`
	AuthorID  uint64 `gorm:"not null;index"`
	Likes     int64  `gorm:"not null;default:0"`
	ReplyTo   *uint64
	CreatedAt time.Time `gorm:"index:idx_post_time,priority:2"`

	Post        *Post `json:"-"`
	Author      *User `json:"-"`
	ReplyToUser *User `gorm:"foreignKey:ReplyTo" json:"-"`
}

func (Comment) TableName() string { return "comments" }
