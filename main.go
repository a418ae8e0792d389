package main

import (
	"context"
	"log"
	"net/http"

	"github.com/eventplanner/event-orders-api/config"
	"github.com/eventplanner/event-orders-api/controllers"
	"github.com/eventplanner/event-orders-api/middleware"
	"github.com/eventplanner/event-orders-api/models"
	"github.com/eventplanner/event-orders-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	log.Println("Starting Event Orders API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	var images services.ImageService
	if cfg.ImageStorageEnabled() {
		s3Service, err := services.NewS3Service(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to initialize S3 service: %v", err)
		}
		images = services.NewS3ImageService(s3Service)
		log.Printf("Product images stored in S3 bucket %s", cfg.AWSS3Bucket)
	} else {
		log.Println("AWS_S3_BUCKET not set, product image uploads are disabled")
	}

	router := setupRouter(cfg, db, images)

	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires middleware, operational endpoints and resource routes
func setupRouter(cfg *config.Config, db *gorm.DB, images services.ImageService) *gin.Engine {
	router := gin.New()

	metrics := middleware.NewMetrics()
	router.Use(
		gin.Logger(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		metrics.Middleware(),
	)

	router.GET("/health", healthCheck)
	router.GET("/database/status", databaseStatus(db))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	controllers.RegisterRoutes(router, controllers.Dependencies{
		DB:     db,
		Images: images,
	})

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Event Orders API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			})
			return
		}

		if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			})
			return
		}

		tables, err := db.WithContext(c.Request.Context()).Migrator().GetTables()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Database connected",
			"data": gin.H{
				"driver": db.Dialector.Name(),
				"tables": tables,
			},
		})
	}
}
