package hunt

import (
	"context"
	"log/slog"
	"sync"

	"github.com/focusnest/crafternoon/internal/catalog"
	"github.com/focusnest/crafternoon/internal/progress"
)

// Session is the state of one browser context. Dispatch serializes reduction and
// the persistence that follows it.
//
// The store is the source of truth: other writers (another server replica, huntctl)
// may change the same key, so progress is re-read before every mutation. While a
// save is failing the in-memory progress is kept instead.
type Session struct {
	key    string
	store  *progress.Store
	logger *slog.Logger

	mu      sync.Mutex
	state   State
	unsaved bool
}

// NewSession creates an unmounted session persisting under key.
func NewSession(key string, store *progress.Store, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{key: key, store: store, logger: logger, state: Initial()}
}

// Key is the storage key of the session.
func (s *Session) Key() string { return s.key }

// Hydrate loads persisted progress and mounts the session. On a mounted session it
// refreshes progress from the store and keeps the active tab.
func (s *Session) Hydrate(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refresh(ctx)
	return s.state
}

func (s *Session) refresh(ctx context.Context) {
	if s.store == nil {
		s.state = Reduce(s.state, Hydrate{Progress: s.state.Progress})
		return
	}
	if s.unsaved && s.state.Mounted {
		return
	}
	loaded, ok := s.store.Read(ctx, s.key)
	if ok || !s.state.Mounted {
		s.state = Reduce(s.state, Hydrate{Progress: loaded})
	}
}

// State returns a snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces a and, for mutating actions on a mounted state, persists the result.
func (s *Session) Dispatch(ctx context.Context, a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !a.mutates() || !s.state.Mounted || s.store == nil {
		s.state = Reduce(s.state, a)
		return s.state
	}

	s.refresh(ctx)
	before := s.state.Progress
	s.state = Reduce(s.state, a)
	if s.unsaved || !before.Equal(s.state.Progress) {
		s.unsaved = !s.store.Save(ctx, s.key, s.state.Progress)
	}
	return s.state
}

// Toggle flips id and pulses the haptics when there are any. Callers pass catalog ids.
func (s *Session) Toggle(ctx context.Context, id string, haptics Haptics) State {
	next := s.Dispatch(ctx, ToggleChallenge{ID: id})
	if haptics != nil {
		if err := haptics.Pulse(ctx, PulseDuration); err != nil {
			s.logger.DebugContext(ctx, "haptic pulse unavailable", "error", err)
		}
	}
	return next
}

// ResetLocation clears loc once confirmer agrees. A nil confirmer or a "no" leaves
// the state untouched. The boolean reports whether the reset was applied.
func (s *Session) ResetLocation(ctx context.Context, loc catalog.Location, confirmer Confirmer) (State, bool) {
	if confirmer == nil || !confirmer.Confirm(ctx, ResetPrompt) {
		return s.State(), false
	}
	return s.Dispatch(ctx, ResetLocation{Location: loc}), true
}

// SelectTab shows loc without touching progress.
func (s *Session) SelectTab(ctx context.Context, loc catalog.Location) State {
	return s.Dispatch(ctx, SelectTab{Location: loc})
}
