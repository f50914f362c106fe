package productivity

import (
	"github.com/Lazaro2022/LazaroSEG-sub000/document"
	"github.com/Lazaro2022/LazaroSEG-sub000/middleware"
	"github.com/Lazaro2022/LazaroSEG-sub000/user"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

func RegisterRoutes(r *gin.Engine, db *sqlx.DB) *ServerService {
	repo := NewServerRepository(db)
	docRepo := document.NewDocumentRepository(db)
	userRepo := user.NewUserRepository(db)
	service := NewServerService(repo, docRepo, userRepo)
	handler := NewServerHandler(service)

	serverRoutes := r.Group("/api/servers")
	serverRoutes.Use(middleware.AuthMiddleware())
	{
		serverRoutes.GET("", handler.GetServers)
		serverRoutes.POST("/refresh", middleware.AdminMiddleware(), handler.RefreshSnapshots)
	}

	return service
}
