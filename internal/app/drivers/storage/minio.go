package storage

import (
	"context"
	"fmt"
	"stackwise-service/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

func NewMinioClient(driverConfig *config.DriverConfig) *minio.Client {
	endpoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		logrus.Fatalf("Failed to create MinIO client: %v", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, driverConfig.Minio.BucketName)
	if err != nil {
		logrus.Fatalf("Failed to check MinIO bucket: %v", err)
	}
	if !exists {
		err = client.MakeBucket(ctx, driverConfig.Minio.BucketName, minio.MakeBucketOptions{})
		if err != nil {
			logrus.Fatalf("Failed to create MinIO bucket: %v", err)
		}
	}

	return client
}
