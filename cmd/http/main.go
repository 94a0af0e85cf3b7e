package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stackwise-service/internal/app/config"
	"stackwise-service/internal/app/delivery/http/middlewares"
	"stackwise-service/internal/app/delivery/http/routers"
	"stackwise-service/internal/app/drivers/database"
	"stackwise-service/internal/app/drivers/logger"
	"stackwise-service/internal/app/drivers/messaging"
	"stackwise-service/internal/app/drivers/storage"
	"stackwise-service/internal/app/services/core/medications"
	"stackwise-service/internal/app/services/core/profiles"
	"stackwise-service/internal/app/services/core/stacks"
	"stackwise-service/internal/app/services/core/users"
	"stackwise-service/internal/app/services/fhir_spark/medication_statements"
	medicationsFhir "stackwise-service/internal/app/services/fhir_spark/medications"
	"stackwise-service/internal/app/services/shared/events"
	"stackwise-service/internal/app/services/shared/identity"
	"stackwise-service/internal/app/services/shared/redis"
	sharedStorage "stackwise-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitProcessLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinioClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()
	logrus.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that were already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	internalConfig := bootstrap.InternalConfig

	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)
	eventPublisher, err := events.NewEventPublisher(bootstrap.RabbitMQ, internalConfig.App.StackEventsQueue)
	if err != nil {
		logrus.Fatalf("Failed to set up event publisher: %v", err)
	}
	identityClient := identity.NewIdentityClient(internalConfig.Identity, bootstrap.Logger)

	// FHIR clients
	medicationFhirClient := medicationsFhir.NewMedicationFhirClient(internalConfig.FHIR.BaseUrl, bootstrap.Logger)
	statementFhirClient := medication_statements.NewMedicationStatementFhirClient(internalConfig.FHIR.BaseUrl, bootstrap.Logger)

	// User directory
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, bootstrap.Logger)
	userController := users.NewUserController(bootstrap.Logger, userUsecase, internalConfig)

	// Stack
	stackUsecase := stacks.NewStackUsecase(
		statementFhirClient,
		medicationFhirClient,
		userMongoRepository,
		redisRepository,
		eventPublisher,
		internalConfig,
		bootstrap.Logger,
	)
	stackController := stacks.NewStackController(bootstrap.Logger, stackUsecase, internalConfig)

	// Medication catalog
	medicationUsecase := medications.NewMedicationUsecase(medicationFhirClient, redisRepository, internalConfig, bootstrap.Logger)
	medicationController := medications.NewMedicationController(bootstrap.Logger, medicationUsecase, internalConfig)

	// Profile
	profileUsecase := profiles.NewProfileUsecase(identityClient, minioStorage, bootstrap.DriverConfig.Minio.BucketName, bootstrap.Logger)
	profileController := profiles.NewProfileController(bootstrap.Logger, profileUsecase, internalConfig)

	middlewareSet := middlewares.NewMiddlewares(bootstrap.Logger, internalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewareSet,
		stackController,
		medicationController,
		profileController,
		userController,
	)
}
