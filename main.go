package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"wakeupvoter-be/config"
	"wakeupvoter-be/controllers"
	"wakeupvoter-be/middlewares"
	"wakeupvoter-be/routes"
	"wakeupvoter-be/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}

	st := store.NewMongo(db)
	if err := store.EnsureIndexes(db); err != nil {
		log.Printf("Failed to ensure indexes: %v", err)
	}

	config.ConnectRedis()

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowHeaders("Authorization", "X-Request-ID")
	r.Use(cors.New(corsConfig))
	r.Use(middlewares.RequestID())

	routes.AuthRoutes(r, controllers.NewAuthController(st))
	routes.IssueRoutes(r, controllers.NewIssueController(st), controllers.NewFactCheckController(st))
	routes.PromiseRoutes(r, controllers.NewPromiseController(st), controllers.NewPromiseFeedbackController(st))
	routes.CivicRoutes(r,
		controllers.NewReportController(st),
		controllers.NewDiscussionController(st),
		controllers.NewPollController(st),
		controllers.NewAccountabilityController(st),
		controllers.NewReminderController(st),
		controllers.NewDistractionController(st),
	)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
