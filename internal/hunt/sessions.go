package hunt

import (
	"context"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/focusnest/crafternoon/internal/progress"
)

// DefaultSessionLimit bounds the number of browser contexts kept in memory.
const DefaultSessionLimit = 4096

// Sessions hands out one hydrated Session per browser context id. It keeps the
// most recently used sessions only; an evicted context loses its active tab and
// nothing else, since progress lives in the store.
type Sessions struct {
	store  *progress.Store
	logger *slog.Logger
	cache  *lru.Cache[string, *Session]
}

// NewSessions creates an empty session registry backed by store. A limit of zero
// or less means DefaultSessionLimit.
func NewSessions(store *progress.Store, logger *slog.Logger, limit int) *Sessions {
	if logger == nil {
		logger = slog.Default()
	}
	if limit <= 0 {
		limit = DefaultSessionLimit
	}
	cache, err := lru.New[string, *Session](limit)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	return &Sessions{store: store, logger: logger, cache: cache}
}

// Get returns the session for contextID with its progress refreshed from the store.
// The returned session is always mounted.
func (m *Sessions) Get(ctx context.Context, contextID string) *Session {
	if sess, ok := m.cache.Get(contextID); ok {
		sess.Hydrate(ctx)
		return sess
	}

	sess := NewSession(progress.ScopedKey(contextID), m.store, m.logger.With("contextId", contextID))
	sess.Hydrate(ctx)
	if prev, ok, _ := m.cache.PeekOrAdd(contextID, sess); ok {
		return prev
	}
	return sess
}

// Len is the number of live sessions.
func (m *Sessions) Len() int {
	return m.cache.Len()
}
