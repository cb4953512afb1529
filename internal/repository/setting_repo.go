package repository

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/yunhai/blog_go_server/internal/model"
)

// settings 表中评论设置所在行的主键
const SettingIDComment = "comment"

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get 根据 ID 获取设置行
func (r *SettingRepository) Get(id string) (*model.Setting, error) {
	var setting model.Setting
	err := r.db.Where("id = ?", id).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Save 写入设置行（不存在则创建）
func (r *SettingRepository) Save(id, value string) error {
	setting := &model.Setting{ID: id, Value: value}
	return r.db.Save(setting).Error
}

// GetCommentDefaultStatus 读取当前的评论默认状态。
// 行缺失、JSON 损坏或值非法时返回 fallback，与设置接口的兜底行为一致。
func (r *SettingRepository) GetCommentDefaultStatus(fallback string) string {
	// 读取失败不阻断评论提交
	setting, err := r.Get(SettingIDComment)
	if err != nil {
		return fallback
	}

	var cs model.CommentSetting
	if err := json.Unmarshal([]byte(setting.Value), &cs); err != nil {
		return fallback
	}

	if cs.DefaultStatus != model.CommentStatusApproved && cs.DefaultStatus != model.CommentStatusPending {
		return fallback
	}
	return cs.DefaultStatus
}
