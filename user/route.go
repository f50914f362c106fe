package user

import (
	"github.com/Lazaro2022/LazaroSEG-sub000/middleware"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.Engine, db *sqlx.DB, redisClient *redis.Client) {
	repo := NewUserRepository(db)
	service := NewUserService(repo, redisClient)
	handler := NewUserHandler(service)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", handler.Login)
		authGroup.POST("/refresh", handler.RefreshToken)
		authGroup.POST("/logout", middleware.AuthMiddleware(), handler.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(), handler.GetCurrentUser)
	}

	userGroup := r.Group("/api/users")
	userGroup.Use(middleware.AuthMiddleware())
	{
		userGroup.GET("", handler.GetUsers)
		userGroup.GET("/:id", handler.GetUserByID)
	}

	adminGroup := r.Group("/api/users")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.POST("", handler.CreateUser)
		adminGroup.PUT("/:id", handler.UpdateUser)
		adminGroup.DELETE("/:id", handler.DeleteUser)
	}
}
