package models

import (
	"time"
)

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;unique" json:"name"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"` // set on create, stable afterwards
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 非数据库字段，用于查询时填充
	JokeCount int `gorm:"-" json:"joke_count"`
}
