package progress

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	store map[string]string
}

// NewMemoryRepository returns an in-memory repository intended for local development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{store: make(map[string]string)}
}

func (r *memoryRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.store[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (r *memoryRepository) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrMissingKey
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[key] = value
	return nil
}
