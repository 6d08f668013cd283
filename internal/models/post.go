package models

import (
	"time"
)

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Pid       string    `gorm:"uniqueIndex;size:8;not null" json:"pid"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"` // markdown source
	Category  string    `gorm:"size:50;default:'general';index" json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 非数据库字段，查询时填充
	CommentCount  int `gorm:"-" json:"comment_count"`
	ReactionCount int `gorm:"-" json:"reaction_count"`
}

// PostCategories is the fixed choice list offered on the create form.
var PostCategories = []string{
	"news", "announcement", "event", "question", "discussion",
	"resource", "academic", "sports", "religious", "social",
	"study_group", "job", "housing", "other",
}
