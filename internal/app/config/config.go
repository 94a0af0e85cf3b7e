package config

import (
	"fmt"
	"stackwise-service/internal/pkg/utils"

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
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "stackwise"),
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
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "stackwise-profile"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	identityDomain := utils.GetEnvString("IDENTITY_DOMAIN", "localhost:9999")
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MutationRateLimitPerMinute: utils.GetEnvInt("APP_MUTATION_RATE_LIMIT_PER_MINUTE", 30),
			MutationBlockTimeInMinutes: utils.GetEnvInt("APP_MUTATION_BLOCK_TIME_IN_MINUTES", 5),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			SuperadminAPIKeyHash:       utils.GetEnvString("APP_SUPERADMIN_API_KEY_HASH", ""),
			StackEventsQueue:           utils.GetEnvString("APP_RABBITMQ_STACK_EVENTS_QUEUE", "stack-events"),
			ProfilePictureMaxSizeInMB:  utils.GetEnvInt("APP_PROFILE_PICTURE_MAX_SIZE_IN_MB", 2),
		},
		FHIR: FHIR{
			// Must carry a trailing slash; resource type names are appended as-is.
			BaseUrl: utils.GetEnvString("FHIR_BASE_URL", "http://localhost:5555/fhir/"),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		Identity: Identity{
			Domain:       identityDomain,
			ClientID:     utils.GetEnvString("IDENTITY_CLIENT_ID", ""),
			ClientSecret: utils.GetEnvString("IDENTITY_CLIENT_SECRET", ""),
			Audience:     utils.GetEnvString("IDENTITY_AUDIENCE", fmt.Sprintf("https://%s/api/v2/", identityDomain)),
		},
		Stack: Stack{
			MedicationNameCacheTTLInMinutes: utils.GetEnvInt("STACK_MEDICATION_NAME_CACHE_TTL_IN_MINUTES", 5),
		},
	}
}
