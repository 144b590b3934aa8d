package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage holds document and attachment bytes keyed by a
// server-generated name. Handlers never pass client-supplied paths in.
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	GetSize(ctx context.Context, path string) (int64, error)
}

// Config selects and configures a backend.
type Config struct {
	Type      string // local, s3
	BasePath  string // for local storage
	Bucket    string // for s3
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string // custom S3 endpoint (minio etc.)
}

func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
