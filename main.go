package main

import (
	"log"
	"os"

	"github.com/gamer-hub/api-go/config"
	"github.com/gamer-hub/api-go/presence"
	"github.com/gamer-hub/api-go/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize database
	db := config.InitDB()

	// Redis is optional; presence falls back to the persisted flag without it
	tracker := presence.NewTracker(config.ConnectRedis())

	// Create a new Gin router
	r := gin.Default()

	// Add logging middleware
	r.Use(gin.LoggerWithWriter(os.Stdout))
	r.Use(cors.Default())

	// Initialize routes
	routes.SetupRoutes(r, db, tracker)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
