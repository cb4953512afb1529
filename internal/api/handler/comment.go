package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yunhai/blog_go_server/internal/model"
	"github.com/yunhai/blog_go_server/internal/model/dto"
	"github.com/yunhai/blog_go_server/internal/pkg/response"
	"github.com/yunhai/blog_go_server/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
	threadService  *service.ThreadService
}

func NewCommentHandler(commentService *service.CommentService, threadService *service.ThreadService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		threadService:  threadService,
	}
}

// Thread 获取文章的评论树
// GET /api/v1/posts/:id/comments
func (h *CommentHandler) Thread(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的文章ID")
		return
	}

	items, err := h.threadService.AssembleByPostID(c.Request.Context(), postID)
	if err != nil {
		switch err {
		case service.ErrPostNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	// total 只统计一级评论，与前端计数口径一致
	response.Success(c, gin.H{
		"comments": items,
		"total":    len(items),
	})
}

// Create 发表评论
// POST /api/v1/posts/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的文章ID")
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			response.ValidationError(c, commentFieldErrors(verrs))
			return
		}
		response.ParamError(c, err.Error())
		return
	}

	result, err := h.commentService.Submit(c.Request.Context(), postID, &req)
	if err != nil {
		switch err {
		case service.ErrPostNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrParentNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrParentNotInPost:
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "评论提交失败，请稍后重试")
		}
		return
	}

	message := "评论已发布"
	if result.Status == model.CommentStatusPending {
		message = "评论已提交，等待审核"
	}

	response.SuccessWithMessage(c, message, result)
}

// commentFieldErrors 将绑定校验错误转成字段级错误消息
func commentFieldErrors(verrs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Content":
			if fe.Tag() == "max" {
				fields["content"] = "评论内容最多2000个字符"
			} else {
				fields["content"] = "评论内容不能为空"
			}
		case "Author":
			if fe.Tag() == "max" {
				fields["author"] = "昵称最多50个字符"
			} else {
				fields["author"] = "昵称不能为空"
			}
		case "Email":
			fields["email"] = "请输入有效的邮箱地址"
		}
	}
	return fields
}
