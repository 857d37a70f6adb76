package model

import "time"

// User is an identity row. Kind is a single-character tag carried over from
// the desktop client ("U" for normal users, "?" for the seeded smoke-test
// account). Password holds the hex digest of the secret concatenated with
// Salt; Exp only grows through the award rules in the repositories.
type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Kind      string `gorm:"type:char(1);not null;default:'U'"`
	Name      string `gorm:"uniqueIndex;size:255;not null"`
	Password  string `gorm:"size:255;not null"`
	Salt      string `gorm:"size:255;not null"`
	Exp       int64  `gorm:"not null;default:0"`
	CreatedAt time.Time
}

func (User) TableName() string { return "users" }
