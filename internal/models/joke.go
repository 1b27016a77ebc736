package models

import (
	"time"
)

type Joke struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Slug       string    `gorm:"uniqueIndex;size:64;not null" json:"slug"` // derived from question, stable once set
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Category   Category  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
	Tags       []Tag     `gorm:"many2many:joke_tags;" json:"tags"`
	Question   string    `gorm:"not null" json:"question"`
	Answer     string    `gorm:"type:text" json:"answer"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// 非数据库字段，由列表查询的子查询填充
	// rating_avg 为所有投票值的平均数，无投票时为 NULL
	RatingAvg *float64 `gorm:"->;-:migration" json:"rating_avg"`
	NumVotes  int      `gorm:"->;-:migration" json:"num_votes"`
}
