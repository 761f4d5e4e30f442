package s3client

import (
	"context"
	"job-intake-backend/config"

	"github.com/minio/minio-go/v7"
)

var Client *minio.Client

// MakeBucket создаёт бакет для файлов, если он ещё не создан
func MakeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := Client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return Client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}
