package model

import "time"

type Post struct {
	ID        uint64    `gorm:"primaryKey"`
	BarID     uint64    `gorm:"not null;index:idx_bar_time,priority:1"`
	Title     string    `gorm:"size:255;not null"`
	Content   string    `gorm:"type:text;not null"`
	AuthorID  uint64    `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"index:idx_bar_time,priority:2"`

	Bar    *Bar  `json:"-"`
	Author *User `json:"-"`
}

func (Post) TableName() string { return "posts" }
