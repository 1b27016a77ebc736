package models

import (
	"time"
)

type JokeVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_joke_votes_user_joke" json:"user_id"`
	JokeID    uint      `gorm:"not null;uniqueIndex:idx_joke_votes_user_joke;index" json:"joke_id"`
	Value     int       `gorm:"not null" json:"value"` // 1 or -1
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// The composite unique index makes "one vote per user per joke" a storage
// guarantee. A concurrent double submit surfaces as a duplicate key error,
// which the vote handler treats the same as an existing vote.
