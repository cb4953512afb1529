package dto

// CreateCommentRequest 发表评论请求
type CreateCommentRequest struct {
	Content  string `json:"content" binding:"required,min=1,max=2000"`
	Author   string `json:"author" binding:"required,min=1,max=50"`
	Email    string `json:"email" binding:"required,email"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

// UpdateCommentStatusRequest 修改评论状态请求
type UpdateCommentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING APPROVED REJECTED HIDDEN"`
}

// CommentItem 对外的评论项，不包含邮箱原文
type CommentItem struct {
	ID        int64          `json:"id"`
	ParentID  *int64         `json:"parent_id"`
	Author    string         `json:"author"`
	AvatarURL string         `json:"avatar_url"`
	Content   string         `json:"content"`
	Replies   []*CommentItem `json:"replies,omitempty"`
	CreatedAt string         `json:"created_at"`
}

// CreateCommentResponse 发表评论响应，status 以实际落库的值为准
type CreateCommentResponse struct {
	Comment *CommentItem `json:"comment"`
	Status  string       `json:"status"`
}

// AdminCommentItem 后台评论项，附带所属文章信息
type AdminCommentItem struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"post_id"`
	PostTitle string `json:"post_title"`
	PostSlug  string `json:"post_slug"`
	ParentID  *int64 `json:"parent_id"`
	Author    string `json:"author"`
	Email     string `json:"email"`
	Content   string `json:"content"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
