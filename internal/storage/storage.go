// Package storage delivers analysis artifacts (the sweep CSV and the PDF
// report) as named byte payloads and hands back a retrieval URL.
package storage

import (
	"context"
	"fmt"

	"github.com/BanAutomation/battery-api/internal/config"
)

// Store accepts an opaque payload under a name and returns where it can be
// retrieved from.
type Store interface {
	Put(ctx context.Context, name string, payload []byte, contentType string) (string, error)
}

// NewStore creates the storage backend selected by the configuration.
func NewStore(cfg config.StorageConfig) (Store, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStore(cfg.Local)
	case "minio":
		return NewMinioStore(cfg.Minio)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Type)
	}
}
