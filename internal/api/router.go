package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yunhai/blog_go_server/config"
	"github.com/yunhai/blog_go_server/internal/api/handler"
	"github.com/yunhai/blog_go_server/internal/api/middleware"
)

type Router struct {
	commentHandler      *handler.CommentHandler
	adminCommentHandler *handler.AdminCommentHandler
	cfg                 *config.Config
}

func NewRouter(
	commentHandler *handler.CommentHandler,
	adminCommentHandler *handler.AdminCommentHandler,
	cfg *config.Config,
) *Router {
	return &Router{
		commentHandler:      commentHandler,
		adminCommentHandler: adminCommentHandler,
		cfg:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api/v1")
	{
		// 公开接口 - 评论
		posts := api.Group("/posts")
		{
			posts.GET("/:id/comments", r.commentHandler.Thread)
			posts.POST("/:id/comments", r.commentHandler.Create)
		}

		// 后台接口 - 审核
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(r.cfg.JWT.Secret))
		{
			admin.GET("/comments", r.adminCommentHandler.List)
			admin.PATCH("/comments/:id/status", r.adminCommentHandler.UpdateStatus)
			admin.DELETE("/comments/:id", r.adminCommentHandler.Delete)
		}
	}

	return engine
}
