package storage

import (
	"context"
	"errors"
	"fmt"

	"schedulebuilder-backend/config"
)

// ErrObjectNotFound is returned when no blob exists under the given key.
var ErrObjectNotFound = errors.New("object not found")

// Storage interface for export blob operations
type Storage interface {
	// Save stores a blob under the given key
	Save(ctx context.Context, key string, data []byte) error

	// Load retrieves a blob by key
	Load(ctx context.Context, key string) ([]byte, error)

	// Delete removes a blob by key
	Delete(ctx context.Context, key string) error
}

// StorageType represents the storage backend type
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// NewStorage creates a storage instance from the loaded configuration
func NewStorage(cfg *config.Config) (Storage, error) {
	switch StorageType(cfg.StorageType) {
	case StorageTypeLocal:
		return NewLocalStorage(cfg.StorageLocalPath)

	case StorageTypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}
		return NewS3Storage(cfg)

	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.StorageType)
	}
}
