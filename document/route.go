package document

import (
	"github.com/Lazaro2022/LazaroSEG-sub000/config"
	"github.com/Lazaro2022/LazaroSEG-sub000/middleware"
	"github.com/Lazaro2022/LazaroSEG-sub000/settings"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes wires the document module and returns its service so
// main can hand it to the scheduler.
func RegisterRoutes(r *gin.Engine, db *sqlx.DB, redisClient *redis.Client, hub *config.WSHub, settingsSvc *settings.SettingsService) *DocumentService {
	repo := NewDocumentRepository(db)
	service := NewDocumentService(repo, redisClient, hub)
	handler := NewDocumentHandler(service, settingsSvc)

	documentRoutes := r.Group("/api/documents")
	documentRoutes.Use(middleware.AuthMiddleware())
	{
		documentRoutes.POST("", handler.CreateDocument)
		documentRoutes.GET("", handler.GetDocuments)
		documentRoutes.GET("/archived", handler.GetArchivedDocuments)
		documentRoutes.GET("/:id", handler.GetDocumentByID)
		documentRoutes.PUT("/:id", handler.UpdateDocument)
		documentRoutes.PUT("/:id/complete", handler.CompleteDocument)
		documentRoutes.PUT("/:id/archive", handler.ArchiveDocument)
		documentRoutes.PUT("/:id/restore", handler.RestoreDocument)
		documentRoutes.DELETE("/:id", handler.DeleteDocument)
	}

	return service
}
