package testutil

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yunhai/blog_go_server/internal/model"
	"github.com/yunhai/blog_go_server/internal/repository"
)

// TestPost 创建测试文章
func TestPost(t *testing.T, db *gorm.DB, opts ...func(*model.Post)) *model.Post {
	t.Helper()

	nano := time.Now().UnixNano()
	post := &model.Post{
		Title:  fmt.Sprintf("Test Post %d", nano%10000),
		Slug:   fmt.Sprintf("test-post-%d", nano),
		Status: model.PostStatusPublished,
	}

	for _, opt := range opts {
		opt(post)
	}

	if err := db.Create(post).Error; err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}

	return post
}

// WithTitle 设置文章标题
func WithTitle(title string) func(*model.Post) {
	return func(p *model.Post) {
		p.Title = title
	}
}

// WithSlug 设置文章别名
func WithSlug(slug string) func(*model.Post) {
	return func(p *model.Post) {
		p.Slug = slug
	}
}

// TestComment 创建测试一级评论，默认已通过
func TestComment(t *testing.T, db *gorm.DB, postID int64, content string, opts ...func(*model.Comment)) *model.Comment {
	t.Helper()

	comment := &model.Comment{
		PostID:  postID,
		Author:  "测试用户",
		Email:   fmt.Sprintf("test_%d@example.com", time.Now().UnixNano()),
		Content: content,
		Status:  model.CommentStatusApproved,
	}

	for _, opt := range opts {
		opt(comment)
	}

	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}

	return comment
}

// TestReply 创建测试回复，默认已通过
func TestReply(t *testing.T, db *gorm.DB, postID, parentID int64, content string, opts ...func(*model.Comment)) *model.Comment {
	t.Helper()

	opts = append([]func(*model.Comment){func(c *model.Comment) {
		c.ParentID = &parentID
	}}, opts...)

	return TestComment(t, db, postID, content, opts...)
}

// WithStatus 设置评论状态
func WithStatus(status string) func(*model.Comment) {
	return func(c *model.Comment) {
		c.Status = status
	}
}

// WithAuthor 设置评论昵称
func WithAuthor(author string) func(*model.Comment) {
	return func(c *model.Comment) {
		c.Author = author
	}
}

// WithEmail 设置评论邮箱
func WithEmail(email string) func(*model.Comment) {
	return func(c *model.Comment) {
		c.Email = email
	}
}

// WithCreatedAt 固定创建时间，排序相关的测试需要
func WithCreatedAt(createdAt time.Time) func(*model.Comment) {
	return func(c *model.Comment) {
		c.CreatedAt = createdAt
	}
}

// SetCommentDefaultStatus 写入站点的评论默认状态设置
func SetCommentDefaultStatus(t *testing.T, db *gorm.DB, status string) {
	t.Helper()

	value, err := json.Marshal(model.CommentSetting{
		DefaultStatus: status,
		PerPage:       10,
		EnableNested:  true,
	})
	if err != nil {
		t.Fatalf("Failed to marshal comment setting: %v", err)
	}

	setting := &model.Setting{ID: repository.SettingIDComment, Value: string(value)}
	if err := db.Save(setting).Error; err != nil {
		t.Fatalf("Failed to save comment setting: %v", err)
	}
}
