package hunt

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusnest/crafternoon/internal/catalog"
	"github.com/focusnest/crafternoon/internal/progress"
	"github.com/focusnest/crafternoon/internal/shared/logging"
)

func newSessions(t *testing.T, repo progress.Repository) *Sessions {
	t.Helper()
	return newLimitedSessions(t, repo, 0)
}

func newLimitedSessions(t *testing.T, repo progress.Repository, limit int) *Sessions {
	t.Helper()
	store, err := progress.NewStore(repo, logging.Discard())
	require.NoError(t, err)
	return NewSessions(store, logging.Discard(), limit)
}

func TestSessionsAreMountedAndReused(t *testing.T) {
	ctx := context.Background()
	m := newSessions(t, progress.NewMemoryRepository())

	a := m.Get(ctx, "a")
	assert.True(t, a.State().Mounted)
	assert.Same(t, a, m.Get(ctx, "a"))
	assert.Equal(t, progress.ScopedKey("a"), a.Key())
	assert.Equal(t, 1, m.Len())
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	m := newSessions(t, progress.NewMemoryRepository())

	m.Get(ctx, "a").Toggle(ctx, "craft-messy", nil)
	assert.Equal(t, 0, m.Get(ctx, "b").State().CompletedCount(catalog.Craft))
}

func TestSessionsHydrateFromStore(t *testing.T) {
	ctx := context.Background()
	repo := progress.NewMemoryRepository()
	require.NoError(t, repo.Set(ctx, progress.ScopedKey("returning"), `{"library-words":true}`))

	m := newSessions(t, repo)
	assert.Equal(t, 1, m.Get(ctx, "returning").State().CompletedCount(catalog.Library))
}

func TestSessionsConcurrentToggles(t *testing.T) {
	ctx := context.Background()
	m := newSessions(t, progress.NewMemoryRepository())

	var wg sync.WaitGroup
	for _, c := range catalog.Challenges(catalog.Library) {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			m.Get(ctx, "shared").Toggle(ctx, id, nil)
		}(c.ID)
	}
	wg.Wait()

	assert.True(t, m.Get(ctx, "shared").State().Complete(catalog.Library))
}

func TestSessionsPickUpOtherWriters(t *testing.T) {
	ctx := context.Background()
	repo := progress.NewMemoryRepository()
	m := newSessions(t, repo)

	server := m.Get(ctx, "ctx-1")

	// A second writer on the same key, e.g. huntctl --context ctx-1.
	other := newSession(t, repo, progress.ScopedKey("ctx-1"))
	other.Toggle(ctx, "library-place", nil)

	server.Toggle(ctx, "craft-messy", nil)

	stored, err := repo.Get(ctx, progress.ScopedKey("ctx-1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"craft-messy":true,"library-place":true}`, stored)
	assert.True(t, m.Get(ctx, "ctx-1").State().Progress.Has("library-place"))
}

func TestSessionsGetRefreshesButKeepsTab(t *testing.T) {
	ctx := context.Background()
	repo := progress.NewMemoryRepository()
	m := newSessions(t, repo)

	m.Get(ctx, "a").SelectTab(ctx, catalog.Library)
	require.NoError(t, repo.Set(ctx, progress.ScopedKey("a"), `{"library-words":true}`))

	s := m.Get(ctx, "a").State()
	assert.Equal(t, catalog.Library, s.Active)
	assert.True(t, s.Progress.Has("library-words"))
}

func TestSessionsAreBounded(t *testing.T) {
	ctx := context.Background()
	repo := progress.NewMemoryRepository()
	m := newLimitedSessions(t, repo, 10)

	for i := 0; i < 1000; i++ {
		m.Get(ctx, fmt.Sprintf("visitor-%d", i))
	}
	assert.Equal(t, 10, m.Len())
}

func TestEvictedSessionKeepsProgress(t *testing.T) {
	ctx := context.Background()
	repo := progress.NewMemoryRepository()
	m := newLimitedSessions(t, repo, 1)

	m.Get(ctx, "a").Toggle(ctx, "craft-friends", nil)
	m.Get(ctx, "b")

	assert.True(t, m.Get(ctx, "a").State().Progress.Has("craft-friends"))
}
