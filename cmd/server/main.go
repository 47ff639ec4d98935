package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hidan-dev/employee-records-api/internal/config"
	"github.com/hidan-dev/employee-records-api/internal/database"
	"github.com/hidan-dev/employee-records-api/internal/handlers"
	"github.com/hidan-dev/employee-records-api/internal/logging"
	"github.com/hidan-dev/employee-records-api/internal/middleware"
	"github.com/hidan-dev/employee-records-api/internal/repository"
	"github.com/hidan-dev/employee-records-api/internal/services"
	"github.com/hidan-dev/employee-records-api/internal/storage"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer logger.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database and prepare the schema before accepting traffic
	if err := database.Connect(cfg); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := database.Seed(cfg); err != nil {
		logger.Fatal("Failed to seed demo data", zap.Error(err))
	}

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	adminKeyRepo := repository.NewAdminKeyRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)

	photos := storage.NewPhotoStore(cfg.UploadDir, logger)

	authService := services.NewAuthService(userRepo, adminKeyRepo)
	employeeService := services.NewEmployeeService(employeeRepo, photos)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	staticHandler, err := handlers.NewStaticHandler(cfg.AssetsDir, logger)
	if err != nil {
		logger.Fatal("Failed to resolve assets directory", zap.Error(err))
	}

	// Initialize Gin router
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.MaxBodySize(cfg.MaxUploadBytes))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/login", authHandler.Login)

	// API routes
	api := r.Group("/api")
	{
		api.POST("/check-key", authHandler.CheckKey)
		api.POST("/employees", employeeHandler.Create)
		api.GET("/employees", employeeHandler.List)
		api.GET("/employees/:id", employeeHandler.Get)
		api.DELETE("/employees/:id", employeeHandler.Delete)
	}

	// Uploaded photos and local front-end assets
	r.Static("/uploads", cfg.UploadDir)
	r.GET("/", staticHandler.Index)
	r.NoRoute(staticHandler.Asset)

	// Start server
	logger.Info("Server starting",
		zap.String("port", cfg.Port),
		zap.String("db", cfg.DBPath),
		zap.String("uploads", cfg.UploadDir),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
