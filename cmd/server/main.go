package main

import (
	"context"
	"log"
	"time"

	"schedulebuilder-backend/config"
	"schedulebuilder-backend/handlers"
	"schedulebuilder-backend/middleware"
	"schedulebuilder-backend/repository"
	"schedulebuilder-backend/service"
	"schedulebuilder-backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.Load()

	// Initialize database connection
	db, err := initPostgres(cfg)
	if err != nil {
		log.Fatal("Failed to initialize Postgres:", err)
	}
	defer db.Close()

	// Initialize export blob storage
	blobStorage, err := storage.NewStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	log.Println("Storage initialized")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	exportRepo := repository.NewExportRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenExpiry)

	scheduleService := service.NewScheduleService(
		service.WithScheduleStore(scheduleRepo),
	)

	exportService := service.NewExportService(
		service.ExportWithScheduleStore(scheduleRepo),
		service.ExportWithExportStore(exportRepo),
		service.ExportWithBlobStorage(blobStorage),
	)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Setup Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Welcome to Schedule Builder API",
		})
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "healthy",
		})
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.RequireAuth(authService), authHandler.Me)
	}

	// Schedule routes (all bearer-protected)
	schedules := r.Group("/schedules", middleware.RequireAuth(authService))
	{
		schedules.POST("", scheduleHandler.CreateSchedule)
		schedules.GET("", scheduleHandler.ListSchedules)
		schedules.GET("/default", scheduleHandler.GetDefaultSchedule)
		schedules.PUT("/:id", scheduleHandler.UpdateSchedule)
		schedules.DELETE("/:id", scheduleHandler.DeleteSchedule)

		schedules.POST("/:id/export", exportHandler.ExportSchedule)
		schedules.GET("/exports", exportHandler.ListExports)
		schedules.GET("/exports/:id", exportHandler.DownloadExport)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func initPostgres(cfg *config.Config) (*pgxpool.Pool, error) {
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	// Create tables at startup
	if err := repository.EnsureSchema(ctx, pool); err != nil {
		return nil, err
	}

	log.Println("Postgres connection established, schema ensured")
	return pool, nil
}
