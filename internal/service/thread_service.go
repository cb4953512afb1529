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

// ThreadService 组装文章页首屏的评论树。
// 只展开一级评论和它们的直接回复，更深层的回复不在首屏载荷中。
type ThreadService struct {
	commentRepo *repository.CommentRepository
	postRepo    *repository.PostRepository
	threadCache *cache.Cache
	cfg         *config.Config
}

func NewThreadService(
	commentRepo *repository.CommentRepository,
	postRepo *repository.PostRepository,
	threadCache *cache.Cache,
	cfg *config.Config,
) *ThreadService {
	return &ThreadService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		threadCache: threadCache,
		cfg:         cfg,
	}
}

// AssembleByPostID 获取文章的评论树：已通过的一级评论新的在前，
// 每条下挂已通过的直接回复，旧的在前。
func (s *ThreadService) AssembleByPostID(ctx context.Context, postID int64) ([]*dto.CommentItem, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	// 缓存命中直接返回，缓存故障退回数据库
	if s.threadCache != nil {
		var cached []*dto.CommentItem
		hit, err := s.threadCache.Get(ctx, threadCacheKey(postID), &cached)
		if err != nil {
			log.Printf("Failed to read thread cache for post %d: %v", postID, err)
		} else if hit {
			return cached, nil
		}
	}

	items, err := s.assemble(postID)
	if err != nil {
		return nil, err
	}

	if s.threadCache != nil {
		ttl := time.Duration(s.cfg.Comment.CacheTTL) * time.Second
		if err := s.threadCache.Set(ctx, threadCacheKey(postID), items, ttl); err != nil {
			log.Printf("Failed to write thread cache for post %d: %v", postID, err)
		}
	}

	return items, nil
}

func (s *ThreadService) assemble(postID int64) ([]*dto.CommentItem, error) {
	comments, err := s.commentRepo.ListTopLevelApproved(postID)
	if err != nil {
		return nil, err
	}

	if len(comments) == 0 {
		return []*dto.CommentItem{}, nil
	}

	// 收集一级评论ID
	parentIDs := make([]int64, len(comments))
	for i, c := range comments {
		parentIDs[i] = c.ID
	}

	// 批量获取直接回复
	replies, err := s.commentRepo.GetApprovedRepliesByParentIDs(parentIDs)
	if err != nil {
		return nil, err
	}

	// 构建回复映射
	repliesMap := make(map[int64][]*model.Comment)
	for _, r := range replies {
		if r.ParentID != nil {
			repliesMap[*r.ParentID] = append(repliesMap[*r.ParentID], r)
		}
	}

	// 组装结果
	items := make([]*dto.CommentItem, len(comments))
	for i, c := range comments {
		items[i] = buildCommentItem(c)

		if childReplies, ok := repliesMap[c.ID]; ok {
			items[i].Replies = make([]*dto.CommentItem, len(childReplies))
			for j, r := range childReplies {
				items[i].Replies[j] = buildCommentItem(r)
			}
		}
	}

	return items, nil
}
