package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/gearshift-labs/partsdepot/internal/handler/http"
	redisclient "github.com/gearshift-labs/partsdepot/internal/infrastructure/cache"
	"github.com/gearshift-labs/partsdepot/internal/infrastructure/config"
	database "github.com/gearshift-labs/partsdepot/internal/infrastructure/database"
	"github.com/gearshift-labs/partsdepot/internal/infrastructure/logger"
	"github.com/gearshift-labs/partsdepot/internal/infrastructure/repository/mongodb"
	"github.com/gearshift-labs/partsdepot/internal/infrastructure/session"
	"github.com/gearshift-labs/partsdepot/internal/infrastructure/store"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	if appConfig.MongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	if appConfig.SessionSecret == "" {
		log.Fatal("SESSION_SECRET environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(appConfig.MongoDBName)
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	carRepo := mongodb.NewMongoCarRepository(db.Collection("cars"))
	sparePartRepo := mongodb.NewMongoSparePartRepository(db.Collection("spareparts"))
	orderRepo := mongodb.NewMongoOrderRepository(db.Collection("orders"))

	// Dependency Injection: Services
	appLogger := logger.NewStdLogger()
	sessionCodec := session.NewCodec(appConfig.SessionSecret, appConfig.SessionTTL)

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		userRepo, carRepo, sparePartRepo, orderRepo,
		sessionCodec, appLogger,
		appConfig.AppBaseURL, appConfig.GithubClientID, appConfig.GithubClientSecret,
	)

	// Optional Dependency Injection: Redis catalog cache
	if appConfig.RedisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), appConfig.RedisURL)
		defer redisclient.Close(rdb)
		appRouter.SparePartHandler().SetCatalogCache(store.NewCatalogCacheStore(rdb))
	}

	appRouter.SetupRoutes(router)

	// Start the server
	appLogger.Infof("Server running on port %s", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
