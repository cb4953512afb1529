package repository

import (
	"gorm.io/gorm"

	"github.com/yunhai/blog_go_server/internal/model"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create 创建评论
func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID 根据 ID 获取评论
func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateStatus 覆盖写评论状态，不校验状态迁移
func (r *CommentRepository) UpdateStatus(id int64, status string) error {
	return r.db.Model(&model.Comment{}).Where("id = ?", id).Update("status", status).Error
}

// Delete 删除评论
func (r *CommentRepository) Delete(id int64) error {
	return r.db.Delete(&model.Comment{}, id).Error
}

// DeleteByParentID 删除直接回复，返回删除数量
func (r *CommentRepository) DeleteByParentID(parentID int64) (int64, error) {
	result := r.db.Where("parent_id = ?", parentID).Delete(&model.Comment{})
	return result.RowsAffected, result.Error
}

// ListForAdmin 后台评论列表，按创建时间倒序，可按状态过滤，附带所属文章
func (r *CommentRepository) ListForAdmin(status string, page, pageSize int) ([]*model.Comment, int64, error) {
	var comments []*model.Comment
	var total int64

	query := r.db.Model(&model.Comment{}).Preload("Post")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// ListTopLevelApproved 获取文章的已通过一级评论，新的在前
func (r *CommentRepository) ListTopLevelApproved(postID int64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.
		Where("post_id = ? AND parent_id IS NULL AND status = ?", postID, model.CommentStatusApproved).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// GetApprovedRepliesByParentIDs 批量获取已通过的回复，旧的在前
func (r *CommentRepository) GetApprovedRepliesByParentIDs(parentIDs []int64) ([]*model.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}

	var replies []*model.Comment
	err := r.db.
		Where("parent_id IN ? AND status = ?", parentIDs, model.CommentStatusApproved).
		Order("created_at ASC").
		Find(&replies).Error
	return replies, err
}

// CountByPostID 获取文章的评论总数（含各状态）
func (r *CommentRepository) CountByPostID(postID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
