package progress

import (
	"context"
	"errors"
	"log/slog"
)

// Store loads and saves one browser context's completion set. Both directions
// swallow storage failures: a broken backend degrades to in-memory progress.
type Store struct {
	repo   Repository
	logger *slog.Logger
}

// NewStore wires a Store to a repository.
func NewStore(repo Repository, logger *slog.Logger) (*Store, error) {
	if repo == nil {
		return nil, errors.New("repo is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{repo: repo, logger: logger}, nil
}

// Load returns the persisted set for key, or an empty set when nothing usable is stored.
func (s *Store) Load(ctx context.Context, key string) Set {
	set, _ := s.Read(ctx, key)
	return set
}

// Read is Load that also reports whether the backend answered. A missing or corrupt
// document is an answer (an empty set); a failed read is not.
func (s *Store) Read(ctx context.Context, key string) (Set, bool) {
	if key == "" {
		s.logger.WarnContext(ctx, "progress load skipped", "error", ErrMissingKey)
		return Set{}, false
	}

	raw, err := s.repo.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return Set{}, true
	}
	if err != nil {
		s.logger.WarnContext(ctx, "progress load failed, starting empty", "key", key, "error", err)
		return Set{}, false
	}

	set, err := Decode([]byte(raw))
	if err != nil {
		s.logger.WarnContext(ctx, "stored progress is corrupt, starting empty", "key", key, "error", err)
		return Set{}, true
	}
	return set, true
}

// Save persists set under key. It reports whether the write landed.
func (s *Store) Save(ctx context.Context, key string, set Set) bool {
	if key == "" {
		s.logger.WarnContext(ctx, "progress save skipped", "error", ErrMissingKey)
		return false
	}

	data, err := Encode(set)
	if err != nil {
		s.logger.WarnContext(ctx, "progress encode failed", "key", key, "error", err)
		return false
	}
	if err := s.repo.Set(ctx, key, string(data)); err != nil {
		s.logger.WarnContext(ctx, "progress save failed, keeping in-memory state", "key", key, "error", err)
		return false
	}
	return true
}
