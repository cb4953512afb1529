package model

import (
	"time"
)

// Setting 站点设置，value 为 JSON 字符串
type Setting struct {
	ID        string    `gorm:"primaryKey;size:50" json:"id"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// CommentSetting settings 表中 id=comment 一行的 JSON 结构
type CommentSetting struct {
	DefaultStatus string `json:"commentDefaultStatus"` // APPROVED / PENDING
	PerPage       int    `json:"commentsPerPage"`
	EnableNested  bool   `json:"enableNestedComments"`
}
