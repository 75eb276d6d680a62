// Package objectstore wraps the MinIO client used for gallery images. Only
// the binary lives here; display metadata is kept in postgres.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/brightpath-foundation/brightpath-api/internal/config"
	"github.com/brightpath-foundation/brightpath-api/internal/logger"
)

// Store holds the MinIO client and target bucket
type Store struct {
	client *minio.Client
	bucket string
	log    *log.Logger
}

// New connects to MinIO and ensures the gallery bucket exists
func New(cfg *config.Config) (*Store, error) {
	log := logger.ObjectStore()

	client, err := minio.New(cfg.Gallery.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Gallery.AccessKey, cfg.Gallery.SecretKey, ""),
		Secure: cfg.Gallery.UseSSL,
	})
	if err != nil {
		log.Error("Failed to create MinIO client", "endpoint", cfg.Gallery.Endpoint, "error", err)
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Gallery.Bucket)
	if err != nil {
		log.Error("Failed to check bucket", "bucket", cfg.Gallery.Bucket, "error", err)
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Gallery.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Gallery.Bucket, minio.MakeBucketOptions{}); err != nil {
			log.Error("Failed to create bucket", "bucket", cfg.Gallery.Bucket, "error", err)
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Gallery.Bucket, err)
		}
		log.Info("Created gallery bucket", "bucket", cfg.Gallery.Bucket)
	}

	log.Info("Object store connected", "endpoint", cfg.Gallery.Endpoint, "bucket", cfg.Gallery.Bucket)

	return &Store{
		client: client,
		bucket: cfg.Gallery.Bucket,
		log:    log,
	}, nil
}

// Put uploads an image and returns the generated object key
func (s *Store) Put(ctx context.Context, filename, contentType string, size int64, reader io.Reader) (string, error) {
	key := uuid.New().String() + strings.ToLower(filepath.Ext(filename))

	s.log.Debug("uploading object", "key", key, "content_type", contentType, "size", size)

	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.log.Error("failed to upload object", "key", key, "error", err)
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	s.log.Info("object uploaded", "key", key)
	return key, nil
}

// Remove deletes an object by key
func (s *Store) Remove(ctx context.Context, key string) error {
	s.log.Debug("removing object", "key", key)

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		s.log.Error("failed to remove object", "key", key, "error", err)
		return fmt.Errorf("failed to remove object: %w", err)
	}

	s.log.Info("object removed", "key", key)
	return nil
}
