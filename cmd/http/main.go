package main

import (
	"audicare-service/internal/app/config"
	"audicare-service/internal/app/delivery/http/middlewares"
	"audicare-service/internal/app/delivery/http/routers"
	"audicare-service/internal/app/drivers/database"
	"audicare-service/internal/app/drivers/logger"
	"audicare-service/internal/app/drivers/messaging"
	"audicare-service/internal/app/drivers/storage"
	"audicare-service/internal/app/services/auth"
	"audicare-service/internal/app/services/encounters"
	"audicare-service/internal/app/services/patients"
	sharedredis "audicare-service/internal/app/services/shared/redis"
	"audicare-service/internal/app/services/shared/registry"
	"audicare-service/internal/app/services/shared/reminderqueue"
	sharedstorage "audicare-service/internal/app/services/shared/storage"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	processLog := logger.NewLogrusLogger(internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	mongoDB := mongoClient.Database(driverConfig.MongoDB.DbName)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		Log:            zapLogger,
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
			processLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	processLog.Println("Waiting for pending requests that were already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		processLog.Fatalf("Server forced to shutdown: %v", err)
	}

	processLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared infrastructure
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)

	registryClient := registry.NewRegistryClient(
		bootstrap.InternalConfig.Registry.BaseUrl,
		time.Duration(bootstrap.InternalConfig.Registry.TimeoutInSeconds)*time.Second,
		bootstrap.InternalConfig.Registry.MaxRequestsPerMinute,
		registry.NewStaticCredentialProvider(bootstrap.InternalConfig.Registry.ServiceToken),
		registry.NewEnvelopeDecoder(),
		redisRepository,
		bootstrap.Log,
	)

	reminderPublisher, err := reminderqueue.NewReminderPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.Reminder.QueueName,
		bootstrap.Log,
	)
	if err != nil {
		log.Fatalf("Failed to initialize reminder publisher: %v", err)
	}

	photoStorage := sharedstorage.NewMinioStorage(
		bootstrap.Minio,
		bootstrap.InternalConfig.Minio.BucketName,
		time.Duration(bootstrap.InternalConfig.Minio.PresignExpiryInMinutes)*time.Minute,
	)

	// Auth
	userMongoRepository := auth.NewUserMongoRepository(bootstrap.MongoDB)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Log)
	authController := auth.NewAuthController(authUsecase, bootstrap.Log)

	// Patient
	patientUsecase := patients.NewPatientUsecase(registryClient, bootstrap.Log)
	patientController := patients.NewPatientController(patientUsecase, bootstrap.Log)

	// Encounter
	hydrator := encounters.NewHydrator(registryClient, redisRepository, time.Minute, bootstrap.Log)
	encounterUsecase := encounters.NewEncounterUsecase(
		registryClient,
		hydrator,
		patientUsecase,
		photoStorage,
		reminderPublisher,
		bootstrap.InternalConfig,
		bootstrap.Log,
	)
	encounterController := encounters.NewEncounterController(encounterUsecase, bootstrap.Log)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Log, authUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		patientController,
		encounterController,
	)
}
