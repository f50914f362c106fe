package settings

import (
	"github.com/Lazaro2022/LazaroSEG-sub000/middleware"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

func RegisterRoutes(r *gin.Engine, db *sqlx.DB) *SettingsService {
	repo := NewSettingsRepository(db)
	service := NewSettingsService(repo)
	handler := NewSettingsHandler(service)

	settingsRoutes := r.Group("/api/settings")
	settingsRoutes.Use(middleware.AuthMiddleware())
	{
		settingsRoutes.GET("", handler.GetSettings)
		settingsRoutes.PUT("", middleware.AdminMiddleware(), handler.UpdateSettings)
	}

	return service
}
