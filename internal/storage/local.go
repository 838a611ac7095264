package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/BanAutomation/battery-api/internal/config"
)

// LocalStore writes payloads under a base directory and returns URLs rooted
// at a configured base URL. Payloads are keyed by a uuid prefix so repeated
// runs never overwrite each other.
type LocalStore struct {
	basePath string
	baseURL  string
}

func NewLocalStore(cfg config.LocalStorageConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.BasePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	return &LocalStore{basePath: cfg.BasePath, baseURL: cfg.BaseURL}, nil
}

func (s *LocalStore) Put(ctx context.Context, name string, payload []byte, contentType string) (string, error) {
	key := fmt.Sprintf("%s-%s", uuid.New().String(), name)
	path := filepath.Join(s.basePath, key)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}
