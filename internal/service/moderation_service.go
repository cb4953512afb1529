package service

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/yunhai/blog_go_server/config"
	"github.com/yunhai/blog_go_server/internal/model"
	"github.com/yunhai/blog_go_server/internal/model/dto"
	"github.com/yunhai/blog_go_server/internal/pkg/cache"
	"github.com/yunhai/blog_go_server/internal/repository"
)

// ModerationService 后台审核操作，调用方的管理员身份已在中间件校验
type ModerationService struct {
	commentRepo *repository.CommentRepository
	postRepo    *repository.PostRepository
	threadCache *cache.Cache
	cfg         *config.Config
}

func NewModerationService(
	commentRepo *repository.CommentRepository,
	postRepo *repository.PostRepository,
	threadCache *cache.Cache,
	cfg *config.Config,
) *ModerationService {
	return &ModerationService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		threadCache: threadCache,
		cfg:         cfg,
	}
}

// SetStatus 覆盖写评论状态。只校验状态值本身是合法枚举，
// 不校验状态迁移路径，后台界面只会发起固定的几种迁移。
func (s *ModerationService) SetStatus(ctx context.Context, commentID int64, status string) error {
	if !model.IsCommentStatus(status) {
		return ErrInvalidStatus
	}

	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if err := s.commentRepo.UpdateStatus(commentID, status); err != nil {
		return err
	}

	invalidateThreadCache(ctx, s.threadCache, comment.PostID)
	return nil
}

// Delete 永久删除评论，直接回复一并删除
func (s *ModerationService) Delete(ctx context.Context, commentID int64) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	deletedReplies, _ := s.commentRepo.DeleteByParentID(commentID)

	if err := s.commentRepo.Delete(commentID); err != nil {
		return err
	}

	// 减少文章评论数（包括子回复）
	totalDeleted := 1 + int(deletedReplies)
	if err := s.postRepo.IncrementCommentCount(comment.PostID, -totalDeleted); err != nil {
		log.Printf("Failed to decrement comment count for post %d: %v", comment.PostID, err)
	}

	invalidateThreadCache(ctx, s.threadCache, comment.PostID)
	return nil
}

// List 后台评论列表，可按状态过滤。查询失败时降级为空列表，
// 不让一次坏查询拖垮整个后台页面。
func (s *ModerationService) List(status string, page, pageSize int) ([]*dto.AdminCommentItem, int64, error) {
	if status != "" && !model.IsCommentStatus(status) {
		return nil, 0, ErrInvalidStatus
	}

	comments, total, err := s.commentRepo.ListForAdmin(status, page, pageSize)
	if err != nil {
		log.Printf("Failed to list comments for admin: %v", err)
		return []*dto.AdminCommentItem{}, 0, nil
	}

	items := make([]*dto.AdminCommentItem, len(comments))
	for i, c := range comments {
		items[i] = buildAdminCommentItem(c)
	}

	return items, total, nil
}

func buildAdminCommentItem(c *model.Comment) *dto.AdminCommentItem {
	item := &dto.AdminCommentItem{
		ID:        c.ID,
		PostID:    c.PostID,
		ParentID:  c.ParentID,
		Author:    c.Author,
		Email:     c.Email,
		Content:   c.Content,
		Status:    c.Status,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}

	if c.Post != nil {
		item.PostTitle = c.Post.Title
		item.PostSlug = c.Post.Slug
	}

	return item
}
