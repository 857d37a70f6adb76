package model

import "time"

type Bar struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:255;not null"`
	OwnerID   uint64 `gorm:"not null;index"`
	CreatedAt time.Time

	Owner *User `json:"-"`
}

func (Bar) TableName() string { return "bars" }

// BarFollow is the follow join row. Presence of a (user, bar) pair is the
// sole source of truth for "is following"; uk_user_bar keeps it unique.
type BarFollow struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_bar"`
	BarID     uint64 `gorm:"not null;index;uniqueIndex:uk_user_bar"`
	CreatedAt time.Time

	User *User `json:"-"`
	Bar  *Bar  `json:"-"`
}

func (BarFollow) TableName() string { return "bar_follows" }
