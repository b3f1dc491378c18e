package router

import (
	"time"

	"github.com/jpconwi/communitycare/config"
	"github.com/jpconwi/communitycare/internal/handler"
	"github.com/jpconwi/communitycare/internal/middleware"
	"github.com/jpconwi/communitycare/internal/repository"
	"github.com/jpconwi/communitycare/internal/service"
	"github.com/jpconwi/communitycare/pkg/photos"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, photoClient photos.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	reportSvc := service.NewReportService(reportRepo, photoClient, cfg.Cloudinary.Folder)
	notificationSvc := service.NewNotificationService(notificationRepo)
	userAdminSvc := service.NewUserAdminService(userRepo, reportRepo)
	statsSvc := service.NewStatsService(statsRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, auditRepo)
	reportHandler := handler.NewReportHandler(reportSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)
	adminHandler := handler.NewAdminHandler(userAdminSvc, auditRepo)
	statsHandler := handler.NewStatsHandler(statsSvc)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authMw, authHandler.Logout)
		}

		reports := api.Group("/reports")
		reports.Use(authMw)
		{
			reports.POST("", reportHandler.Submit)
			reports.GET("", reportHandler.List)
			reports.GET("/:id", reportHandler.Get)
			reports.PATCH("/:id/status", reportHandler.UpdateStatus)
			reports.DELETE("/:id", reportHandler.Delete)
		}

		notifications := api.Group("/notifications")
		notifications.Use(authMw)
		{
			notifications.GET("", notificationHandler.List)
			notifications.GET("/unread-count", notificationHandler.UnreadCount)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
		}

		admin := api.Group("/admin")
		admin.Use(authMw, middleware.AdminRequired())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.PATCH("/users/:id/role", adminHandler.SetRole)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
			admin.GET("/logs", adminHandler.ListLogs)
			admin.DELETE("/logs", adminHandler.ClearLogs)
		}

		api.GET("/stats", authMw, statsHandler.Get)
	}

	return r
}
