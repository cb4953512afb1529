package model

import (
	"time"
)

// 评论审核状态
const (
	CommentStatusPending  = "PENDING"
	CommentStatusApproved = "APPROVED"
	CommentStatusRejected = "REJECTED"
	CommentStatusHidden   = "HIDDEN"
)

// IsCommentStatus 判断是否为合法的审核状态值
func IsCommentStatus(s string) bool {
	switch s {
	case CommentStatusPending, CommentStatusApproved, CommentStatusRejected, CommentStatusHidden:
		return true
	}
	return false
}

type Comment struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	PostID   int64  `gorm:"not null;index" json:"post_id"`
	ParentID *int64 `gorm:"index" json:"parent_id,omitempty"`
	Author   string `gorm:"size:50;not null" json:"author"`
	// 邮箱仅用于头像种子和后台展示，不对外输出
	Email     string    `gorm:"size:100;not null" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Status    string    `gorm:"size:20;default:PENDING;index" json:"status"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	// 关联
	Post    *Post      `gorm:"foreignKey:PostID" json:"post,omitempty"`
	Replies []*Comment `gorm:"-" json:"replies,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
