package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/voyago/voyago/internal/domain/contract"
	"github.com/voyago/voyago/internal/domain/entity"
	handlerHttp "github.com/voyago/voyago/internal/handler/http"
	redisclient "github.com/voyago/voyago/internal/infrastructure/cache"
	"github.com/voyago/voyago/internal/infrastructure/config"
	database "github.com/voyago/voyago/internal/infrastructure/database"
	"github.com/voyago/voyago/internal/infrastructure/jwt"
	"github.com/voyago/voyago/internal/infrastructure/logger"
	"github.com/voyago/voyago/internal/infrastructure/metrics"
	passwordservice "github.com/voyago/voyago/internal/infrastructure/password_service"
	randomgenerator "github.com/voyago/voyago/internal/infrastructure/random_generator"
	"github.com/voyago/voyago/internal/infrastructure/repository/mongodb"
	"github.com/voyago/voyago/internal/infrastructure/store"
	"github.com/voyago/voyago/internal/infrastructure/uuidgen"
	"github.com/voyago/voyago/internal/infrastructure/validator"
	"github.com/voyago/voyago/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Get MongoDB URI and DB name from environment
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	db := mongoClient.Client.Database(dbName)
	destinationCollections := make([]string, 0, len(entity.DestinationTypes()))
	for _, t := range entity.DestinationTypes() {
		destinationCollections = append(destinationCollections, string(t))
	}
	if err := database.EnsureIndexes(context.Background(), db, destinationCollections); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	destRepo := mongodb.NewDestinationRepository(db)
	tripRepo := mongodb.NewTripRepository(db)
	memoryRepo := mongodb.NewMemoryRepository(db.Collection("memories"))

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager, err := jwt.NewJWTManager(
		appConfig.AccessTokenSecret, appConfig.RefreshTokenSecret,
		appConfig.AccessTokenExpiry, appConfig.RefreshTokenExpiry,
	)
	if err != nil {
		log.Fatalf("Failed to initialize JWT manager: %v", err)
	}
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger()
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Optional Dependency Injection: Redis cache
	var recCache contract.IRecommendationCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		defer redisclient.Close(rdb)
		recCache = store.NewRecommendationCacheStore(rdb)
	}

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtService, appLogger, appConfig, appValidator, uuidGenerator, randomGenerator, recCache)
	destUsecase := usecase.NewDestinationUsecase(destRepo, appLogger)
	tripUsecase := usecase.NewTripUsecase(tripRepo, uuidGenerator, appLogger)
	memoryUsecase := usecase.NewMemoryUsecase(memoryRepo, uuidGenerator, appLogger)
	recUsecase := usecase.NewRecommendationUsecase(userRepo, destRepo, recCache, appLogger)

	// Register Prometheus collectors
	metrics.MustRegister()

	// Setup API routes
	appRouter := handlerHttp.NewRouter(userUsecase, destUsecase, tripUsecase, memoryUsecase, recUsecase, appConfig)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
