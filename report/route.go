package report

import (
	"github.com/Lazaro2022/LazaroSEG-sub000/config"
	"github.com/Lazaro2022/LazaroSEG-sub000/document"
	"github.com/Lazaro2022/LazaroSEG-sub000/middleware"
	"github.com/Lazaro2022/LazaroSEG-sub000/settings"
	"github.com/Lazaro2022/LazaroSEG-sub000/user"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.Engine, db *sqlx.DB, redisClient *redis.Client, hub *config.WSHub, settingsSvc *settings.SettingsService) {
	docRepo := document.NewDocumentRepository(db)
	userRepo := user.NewUserRepository(db)
	service := NewReportService(docRepo, userRepo, settingsSvc, redisClient)
	handler := NewReportHandler(service)

	// Browsers cannot set Authorization headers on websocket upgrades,
	// so the live endpoint sits outside the auth group.
	r.GET("/api/reports/live", func(c *gin.Context) {
		hub.HandleConnection(c.Writer, c.Request)
	})

	reportRoutes := r.Group("/api/reports")
	reportRoutes.Use(middleware.AuthMiddleware())
	{
		reportRoutes.GET("/productivity", handler.GetProductivityReport)
		reportRoutes.GET("/yearly", handler.GetYearlyComparison)
		reportRoutes.GET("/pdf", handler.GetPDFReport)
		reportRoutes.GET("/export", handler.ExportDocuments)
	}
}
