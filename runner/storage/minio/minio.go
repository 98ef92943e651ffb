// Package minio is the S3-compatible storage.Store driver, for deployments
// that keep the engine's internal storage on a bucket.
package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/flowmech/flow-plugin-dropbox/runner/storage"
)

// Config holds the connection settings for an S3-compatible endpoint.
type Config struct {
	// Endpoint is the host:port of the storage server, e.g. "localhost:9000".
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string

	// Bucket holds every stored blob. It must already exist.
	Bucket string
}

// Store is a bucket-backed implementation of storage.Store.
// It is safe for concurrent use by multiple goroutines.
type Store struct {
	client *miniogo.Client
	bucket string
}

// New connects to the configured endpoint and verifies the bucket exists.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client failed: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check storage bucket failed: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("storage bucket %q does not exist", cfg.Bucket)
	}

	return &Store{client: client, bucket: cfg.Bucket}, nil
}

func (s *Store) Get(ctx context.Context, uri string) (io.ReadCloser, error) {
	key, err := storage.KeyFor(uri)
	if err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, miniogo.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get stored object %s failed: %w", uri, err)
	}
	return obj, nil
}

func (s *Store) Put(ctx context.Context, r io.Reader) (string, error) {
	key := uuid.NewString()

	// Size -1 streams without knowing the length up front.
	_, err := s.client.PutObject(ctx, s.bucket, key, r, -1, miniogo.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return "", fmt.Errorf("put stored object failed: %w", err)
	}

	return storage.URIFor(key), nil
}
