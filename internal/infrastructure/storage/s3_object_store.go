package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/pymecredit/creditrisk/internal/domain/port"
	"github.com/pymecredit/creditrisk/internal/infrastructure/config"
)

// Compile-time interface check.
var _ port.ObjectStore = (*S3ObjectStore)(nil)

const defaultRegion = "us-east-1"

// S3ObjectStore puts documents into an S3-compatible bucket.
type S3ObjectStore struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

// NewS3ObjectStore creates a client for cfg.Endpoint. No request is made
// until the first put.
func NewS3ObjectStore(cfg config.StorageConfig, logger *slog.Logger) (*S3ObjectStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: defaultRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &S3ObjectStore{client: client, bucket: cfg.Bucket, logger: logger}, nil
}

// PutObject uploads body under key and returns "{bucket}/{key}".
func (s *S3ObjectStore) PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	info, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %s/%s: %w", s.bucket, key, err)
	}

	s.logger.InfoContext(ctx, "document stored",
		"bucket", s.bucket,
		"storage_key", info.Key,
		"size_bytes", info.Size,
	)
	return s.bucket + "/" + key, nil
}

// Ping checks the bucket exists.
func (s *S3ObjectStore) Ping(ctx context.Context) error {
	ok, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !ok {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}
