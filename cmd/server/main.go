package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hospital-analytics-backend/internal/config"
	"hospital-analytics-backend/internal/database"
	"hospital-analytics-backend/internal/generator"
	"hospital-analytics-backend/internal/handler"
	"hospital-analytics-backend/internal/middleware"
	"hospital-analytics-backend/internal/models"
	"hospital-analytics-backend/internal/repository"
	"hospital-analytics-backend/internal/service"
	"hospital-analytics-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize database connection
	db := database.Connect(cfg)

	// Ensure the run log table exists; the nine data tables are created by
	// the ETL replace-load itself.
	if err := db.AutoMigrate(&models.GenerationRun{}); err != nil {
		log.Printf("Warning: Failed to migrate generation_runs table: %v", err)
	}

	// 3. Initialize repositories
	etlRepo := repository.NewETLRepo(db)
	analyticsRepo := repository.NewAnalyticsRepo(db)
	runRepo := repository.NewRunRepo(db)

	// 4. Initialize services
	generatorService := service.NewGeneratorService(runRepo)
	etlService := service.NewETLService(etlRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)

	// 5. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 6. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 7. Register handlers
	generatorDefaults := generator.Config{
		Seed:           cfg.Generator.Seed,
		PatientCount:   cfg.Generator.PatientCount,
		AdmissionCount: cfg.Generator.AdmissionCount,
		StartDate:      cfg.Generator.StartDate,
		EndDate:        cfg.Generator.EndDate,
	}
	generatorHandler := handler.NewGeneratorHandler(generatorService, generatorDefaults, cfg.Generator.CSVDir)
	etlHandler := handler.NewETLHandler(etlService, cfg.Generator.CSVDir)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	// 8. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hospital-analytics-backend",
		})
	})

	r.POST("/generate", generatorHandler.Generate)

	etl := r.Group("/etl")
	{
		etl.POST("/run-load", etlHandler.RunLoad)
	}

	kpis := r.Group("/kpis")
	{
		kpis.GET("/summary", analyticsHandler.Summary)
		kpis.GET("/bed-alerts", analyticsHandler.BedAlerts)
		kpis.GET("/emergency-load", analyticsHandler.EmergencyLoad)
		kpis.GET("/doctor-utilization", analyticsHandler.DoctorUtilization)
	}

	// 9. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
