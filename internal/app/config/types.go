package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Minio          *minio.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App      App
		FHIR     FHIR
		JWT      JWT
		Identity Identity
		Stack    Stack
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		EndpointPrefix             string
		Timezone                   string
		MaxRequests                int
		ShutdownTimeout            int
		MutationRateLimitPerMinute int
		MutationBlockTimeInMinutes int
		RequestTimeoutInSeconds    int
		SuperadminAPIKeyHash       string
		StackEventsQueue           string
		ProfilePictureMaxSizeInMB  int
	}

	FHIR struct {
		BaseUrl string
	}

	JWT struct {
		Secret string
	}

	// Identity holds service credentials for the identity provider's
	// management API (client-credentials grant).
	Identity struct {
		Domain       string
		ClientID     string
		ClientSecret string
		Audience     string
	}

	Stack struct {
		MedicationNameCacheTTLInMinutes int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
