package main

import (
	"fmt"
	"log"

	"github.com/yunhai/blog_go_server/config"
	"github.com/yunhai/blog_go_server/internal/api"
	"github.com/yunhai/blog_go_server/internal/api/handler"
	"github.com/yunhai/blog_go_server/internal/database"
	"github.com/yunhai/blog_go_server/internal/pkg/cache"
	"github.com/yunhai/blog_go_server/internal/repository"
	"github.com/yunhai/blog_go_server/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化数据库
	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	log.Println("Database connected")

	// 初始化 Redis
	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	log.Println("Redis connected")

	// 评论树缓存
	threadCache := cache.NewCache(rdb, "blog")

	// 初始化 Repository
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// 初始化 Service
	commentService := service.NewCommentService(commentRepo, postRepo, settingRepo, threadCache, cfg)
	threadService := service.NewThreadService(commentRepo, postRepo, threadCache, cfg)
	moderationService := service.NewModerationService(commentRepo, postRepo, threadCache, cfg)

	// 初始化 Handler
	commentHandler := handler.NewCommentHandler(commentService, threadService)
	adminCommentHandler := handler.NewAdminCommentHandler(moderationService)

	// 初始化 Router
	router := api.NewRouter(commentHandler, adminCommentHandler, cfg)
	engine := router.Setup()

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
