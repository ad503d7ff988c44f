package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/openlot/openlot-api/config"
	"github.com/openlot/openlot-api/controllers"
	"github.com/openlot/openlot-api/middleware"
	"github.com/openlot/openlot-api/models"
	"github.com/openlot/openlot-api/services"
)

func main() {
	log.Println("Starting OpenLot dealership API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Wire photo storage: offload to S3 when a bucket is configured,
	// otherwise keep base64 payloads inline in the database
	if cfg.S3Enabled() {
		s3Service, err := services.InitS3Service()
		if err != nil {
			log.Fatalf("Failed to initialize S3 service: %v", err)
		}
		services.InitPhotoService(s3Service, true)
		log.Printf("Car photos will be offloaded to s3://%s", cfg.AWSS3Bucket)
	} else {
		services.InitPhotoService(nil, false)
		log.Println("No S3 bucket configured, storing car photos inline")
	}

	router := setupRouter(cfg)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the HTTP surface consumed by the mobile client
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// The Flutter client is served from a different origin
	router.Use(cors.Default())
	router.Use(middleware.Identify(cfg))

	// Authentication
	router.POST("/login", controllers.Login)
	router.POST("/signup", controllers.Signup)

	// User management (admin)
	router.GET("/users", controllers.GetUsers)
	router.POST("/users", controllers.CreateUser)
	router.PUT("/users/:id", controllers.UpdateUser)
	router.DELETE("/users/:id", controllers.DeleteUser)

	// Inventory
	router.GET("/cars", controllers.GetCars)
	router.GET("/cars/:id", controllers.GetCar)
	router.POST("/cars", controllers.CreateCar)
	router.PUT("/cars/:id", controllers.UpdateCar)
	router.DELETE("/cars/:id", controllers.DeleteCar)
	router.POST("/cars/:id/sell", controllers.SellCar)

	// Sales team contacts
	router.GET("/contacts", controllers.GetContacts)
	router.POST("/contacts", controllers.CreateContact)
	router.PUT("/contacts/:id", controllers.UpdateContact)
	router.DELETE("/contacts/:id", controllers.DeleteContact)

	// Reporting
	router.GET("/reports/stats", controllers.GetReportStats)

	// Operational endpoints
	router.GET("/health", healthCheck)
	router.GET("/database/status", databaseStatus)

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OpenLot API is running",
	})
}

// databaseStatus checks database connectivity
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get database instance",
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
	})
}
