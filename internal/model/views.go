package model

import "time"

// Read-side shapes. These are scan targets for the enrichment queries; the
// like counts always come from the relation tables, not from any stored
// counter.

type PostView struct {
	ID           uint64
	BarID        uint64
	Title        string
	Content      string
	AuthorID     uint64
	AuthorName   string
	CreatedAt    time.Time
	LikeCount    int64
	CommentCount int64
	LikedByMe    bool
}

type CommentView struct {
	ID         uint64
	PostID     uint64
	Content    string
	AuthorID   uint64
	AuthorName string
	ReplyTo    *uint64
	CreatedAt  time.Time
	LikeCount  int64
	LikedByMe  bool
}

// PostDetail is a post plus its leading page of comments, the shape the
// desktop client reads when opening a thread.
type PostDetail struct {
	PostView
	Comments []CommentView
}

type HotBar struct {
	ID        uint64
	Name      string
	PostCount int64
}

type Stats struct {
	TotalPosts    int64
	TotalUsers    int64
	TotalComments int64
	PostsToday    int64
	UsersToday    int64
}
