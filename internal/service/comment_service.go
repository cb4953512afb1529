package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/yunhai/blog_go_server/config"
	"github.com/yunhai/blog_go_server/internal/model"
	"github.com/yunhai/blog_go_server/internal/model/dto"
	"github.com/yunhai/blog_go_server/internal/pkg/avatar"
	"github.com/yunhai/blog_go_server/internal/pkg/cache"
	"github.com/yunhai/blog_go_server/internal/repository"
)

var (
	ErrPostNotFound    = errors.New("文章不存在")
	ErrCommentNotFound = errors.New("评论不存在")
	ErrParentNotFound  = errors.New("父评论不存在")
	ErrParentNotInPost = errors.New("父评论不属于该文章")
	ErrInvalidStatus   = errors.New("无效的评论状态")
)

// 头像尺寸，前端以两倍尺寸请求保证清晰度
const avatarSize = 80

// CommentService 公开的评论提交入口
type CommentService struct {
	commentRepo *repository.CommentRepository
	postRepo    *repository.PostRepository
	settingRepo *repository.SettingRepository
	threadCache *cache.Cache
	cfg         *config.Config
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	postRepo *repository.PostRepository,
	settingRepo *repository.SettingRepository,
	threadCache *cache.Cache,
	cfg *config.Config,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		settingRepo: settingRepo,
		threadCache: threadCache,
		cfg:         cfg,
	}
}

// Submit 创建评论。状态由站点设置的默认状态决定，每次提交时读取，
// 不跨请求缓存。
func (s *CommentService) Submit(ctx context.Context, postID int64, req *dto.CreateCommentRequest) (*dto.CreateCommentResponse, error) {
	// 验证文章存在
	if _, err := s.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	// 如果是回复，验证父评论存在且属于同一文章。
	// 回复的回复照常落库，只是首屏不会展开到这一层。
	if req.ParentID != nil {
		parent, err := s.commentRepo.GetByID(*req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}

		if parent.PostID != postID {
			return nil, ErrParentNotInPost
		}
	}

	// 提交时读取当前默认状态
	status := s.settingRepo.GetCommentDefaultStatus(s.cfg.Comment.DefaultStatus)

	comment := &model.Comment{
		PostID:   postID,
		ParentID: req.ParentID,
		Author:   req.Author,
		Email:    req.Email,
		Content:  req.Content,
		Status:   status,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	// 增加文章评论数
	if err := s.postRepo.IncrementCommentCount(postID, 1); err != nil {
		log.Printf("Failed to increment comment count for post %d: %v", postID, err)
	}

	s.invalidateThread(ctx, postID)

	return &dto.CreateCommentResponse{
		Comment: buildCommentItem(comment),
		Status:  comment.Status,
	}, nil
}

func (s *CommentService) invalidateThread(ctx context.Context, postID int64) {
	invalidateThreadCache(ctx, s.threadCache, postID)
}

// threadCacheKey 文章评论树的缓存键
func threadCacheKey(postID int64) string {
	return fmt.Sprintf("thread:%d", postID)
}

// invalidateThreadCache 让文章的评论树缓存失效，缓存不可用时仅记录日志
func invalidateThreadCache(ctx context.Context, c *cache.Cache, postID int64) {
	if c == nil {
		return
	}
	if err := c.Delete(ctx, threadCacheKey(postID)); err != nil {
		log.Printf("Failed to invalidate thread cache for post %d: %v", postID, err)
	}
}

// buildCommentItem 构建对外评论项，邮箱只用于生成头像
func buildCommentItem(c *model.Comment) *dto.CommentItem {
	return &dto.CommentItem{
		ID:        c.ID,
		ParentID:  c.ParentID,
		Author:    c.Author,
		AvatarURL: avatar.URL(avatar.Seed(c.Email, c.Author), avatarSize*2),
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
