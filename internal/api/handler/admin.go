package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yunhai/blog_go_server/internal/model/dto"
	"github.com/yunhai/blog_go_server/internal/pkg/response"
	"github.com/yunhai/blog_go_server/internal/service"
)

// AdminCommentHandler 后台审核接口，路由层已挂管理员认证
type AdminCommentHandler struct {
	moderationService *service.ModerationService
}

func NewAdminCommentHandler(moderationService *service.ModerationService) *AdminCommentHandler {
	return &AdminCommentHandler{
		moderationService: moderationService,
	}
}

// List 获取评论列表
// GET /api/v1/admin/comments
func (h *AdminCommentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	status := c.Query("status")

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	items, total, err := h.moderationService.List(status, page, pageSize)
	if err != nil {
		switch err {
		case service.ErrInvalidStatus:
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessPage(c, total, page, pageSize, items)
}

// UpdateStatus 修改评论状态
// PATCH /api/v1/admin/comments/:id/status
func (h *AdminCommentHandler) UpdateStatus(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的评论ID")
		return
	}

	var req dto.UpdateCommentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	if err := h.moderationService.SetStatus(c.Request.Context(), commentID, req.Status); err != nil {
		switch err {
		case service.ErrCommentNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrInvalidStatus:
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "更新成功", nil)
}

// Delete 删除评论
// DELETE /api/v1/admin/comments/:id
func (h *AdminCommentHandler) Delete(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的评论ID")
		return
	}

	if err := h.moderationService.Delete(c.Request.Context(), commentID); err != nil {
		switch err {
		case service.ErrCommentNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}
