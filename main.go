package main

import (
	"log"
	"os"

	"shopkart/config"
	_ "shopkart/docs"
	"shopkart/middleware"
	"shopkart/repositories"
	"shopkart/routes"

	"github.com/gin-gonic/gin"
)

// @title Shopkart API
// @version 1.0
// @description Flat-file e-commerce demo backend
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if err := os.MkdirAll(config.AppConfig.DataDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	store := repositories.NewFileStore(config.AppConfig.DataDir)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, store)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
