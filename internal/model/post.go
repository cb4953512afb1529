package model

import (
	"time"
)

// 文章发布状态
const (
	PostStatusPublished = "PUBLISHED"
	PostStatusDraft     = "DRAFT"
	PostStatusPrivate   = "PRIVATE"
)

// Post 评论所属的文章。文章本身的增删改查不在本服务范围内，
// 这里只保留评论校验和后台列表展示需要的字段。
type Post struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Slug         string    `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Status       string    `gorm:"size:20;default:PUBLISHED;index" json:"status"`
	CommentCount int       `gorm:"default:0" json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
