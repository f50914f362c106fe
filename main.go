package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lazaro2022/LazaroSEG-sub000/config"
	"github.com/Lazaro2022/LazaroSEG-sub000/cron"
	"github.com/Lazaro2022/LazaroSEG-sub000/document"
	"github.com/Lazaro2022/LazaroSEG-sub000/migrate"
	"github.com/Lazaro2022/LazaroSEG-sub000/productivity"
	"github.com/Lazaro2022/LazaroSEG-sub000/report"
	"github.com/Lazaro2022/LazaroSEG-sub000/seeder"
	"github.com/Lazaro2022/LazaroSEG-sub000/settings"
	"github.com/Lazaro2022/LazaroSEG-sub000/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables.")
	}

	args := os.Args
	db := config.InitDB()
	defer db.Close()

	if len(args) > 1 && args[1] == "--migrate" {
		migrate.RunMigrations(db)
		return
	}

	if len(args) > 1 && args[1] == "--seed" {
		seeder.RunSeeder(db)
		return
	}

	redisClient := config.InitRedis()
	defer redisClient.Close()

	hub := config.NewWSHub()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("ALLOWED_ORIGINS")},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	user.RegisterRoutes(r, db, redisClient)
	settingsService := settings.RegisterRoutes(r, db)
	documentService := document.RegisterRoutes(r, db, redisClient, hub, settingsService)
	productivityService := productivity.RegisterRoutes(r, db)
	report.RegisterRoutes(r, db, redisClient, hub, settingsService)

	scheduler := cron.NewScheduler()
	cron.RegisterMaintenanceJobs(scheduler, documentService, productivityService, settingsService)
	scheduler.Start()

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8000"
	}

	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Server running at http://0.0.0.0:%s\n", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
