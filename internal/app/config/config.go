package config

import (
	"audicare-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "audicare"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
		},
		Registry: Registry{
			BaseUrl:              utils.GetEnvString("REGISTRY_BASE_URL", "http://localhost:5555/registry"),
			ServiceToken:         utils.GetEnvString("REGISTRY_SERVICE_TOKEN", ""),
			TimeoutInSeconds:     utils.GetEnvInt("REGISTRY_TIMEOUT_IN_SECONDS", 15),
			MaxRequestsPerMinute: utils.GetEnvInt("REGISTRY_MAX_REQUESTS_PER_MINUTE", 120),
		},
		JWT: JWT{
			Secret:                         utils.GetEnvString("JWT_SECRET", "anyjwt"),
			LoginSessionExpiredTimeInHours: utils.GetEnvInt("JWT_LOGIN_SESSION_EXPIRED_TIME_IN_HOURS", 12),
		},
		Minio: AppMinio{
			BucketName:              utils.GetEnvString("MINIO_BUCKET_NAME", "audicare-otoscopy"),
			EarPhotoMaxUploadSizeMB: utils.GetEnvInt64("MINIO_EAR_PHOTO_MAX_UPLOAD_SIZE_IN_MB", 5),
			PresignExpiryInMinutes:  utils.GetEnvInt("MINIO_PRESIGN_EXPIRY_IN_MINUTES", 15),
		},
		Reminder: Reminder{
			QueueName: utils.GetEnvString("REMINDER_QUEUE_NAME", "aftercare-reminders"),
			DueInDays: utils.GetEnvInt("REMINDER_DUE_IN_DAYS", 30),
		},
	}
}
