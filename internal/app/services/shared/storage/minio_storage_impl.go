package storage

import (
	"audicare-service/internal/app/contracts"
	"audicare-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient   *minio.Client
	BucketName    string
	PresignExpiry time.Duration
}

func NewMinioStorage(minioClient *minio.Client, bucketName string, presignExpiry time.Duration) contracts.PhotoStorage {
	return &minioStorage{
		MinioClient:   minioClient,
		BucketName:    bucketName,
		PresignExpiry: presignExpiry,
	}
}

func (m *minioStorage) UploadEarPhoto(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, m.PresignExpiry, nil)
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, m.BucketName)
	}

	return presignedURL.String(), nil
}
