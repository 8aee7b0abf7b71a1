package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/henokg/lessonhub/internal/handler/http"
	"github.com/henokg/lessonhub/internal/infrastructure/config"
	"github.com/henokg/lessonhub/internal/infrastructure/database"
	"github.com/henokg/lessonhub/internal/infrastructure/external_services"
	"github.com/henokg/lessonhub/internal/infrastructure/logger"
	"github.com/henokg/lessonhub/internal/infrastructure/repository/mongodb"
	"github.com/henokg/lessonhub/internal/infrastructure/validator"
	"github.com/henokg/lessonhub/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if os.Getenv("MONGODB_USER") == "" || os.Getenv("MONGODB_PASS") == "" {
		log.Fatal("MONGODB_USER and MONGODB_PASS environment variables not set")
	}
	if os.Getenv("STRIPE_SECRET") == "" {
		log.Fatal("STRIPE_SECRET environment variable not set")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger()

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.GetMongoURI())
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()
	appLogger.Infof("connected to MongoDB")

	db := mongoClient.Client.Database(appConfig.GetMongoDBName())

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	lessonRepo := mongodb.NewLessonRepository(db)

	// Dependency Injection: Services
	appValidator := validator.NewValidator()
	paymentGateway := external_services.NewStripeService(appConfig.GetStripeSecretKey(), appConfig.GetClientBaseURL())

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, appLogger)
	lessonUsecase := usecase.NewLessonUsecase(lessonRepo, appLogger)
	paymentUsecase := usecase.NewPaymentUsecase(paymentGateway, userRepo, appValidator, appLogger)

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	appRouter := handlerHttp.NewRouter(userUsecase, lessonUsecase, paymentUsecase)
	appRouter.SetupRoutes(router)

	// Start the server
	port := appConfig.GetServerPort()
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
