package progress

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var fileNameReplacer = strings.NewReplacer(":", "_", "/", "_", "\\", "_")

type fileRepository struct {
	root string
	mu   sync.RWMutex
}

// NewFileRepository stores each key as a JSON document under root.
func NewFileRepository(root string) (Repository, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &fileRepository{root: root}, nil
}

func (r *fileRepository) path(key string) string {
	return filepath.Join(r.root, fileNameReplacer.Replace(key)+".json")
}

func (r *fileRepository) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrMissingKey
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), nil
}

func (r *fileRepository) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrMissingKey
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tmp, err := os.CreateTemp(r.root, ".progress-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), r.path(key)); err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}
