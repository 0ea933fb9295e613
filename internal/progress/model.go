package progress

import (
	"context"
	"sort"
	"strings"

	"github.com/focusnest/crafternoon/internal/catalog"
)

// StorageKey is the durable key that holds a browser context's completion map.
const StorageKey = "scavenger-hunt-progress"

// ScopedKey returns the storage key for one browser context.
func ScopedKey(contextID string) string {
	if contextID == "" {
		return StorageKey
	}
	return StorageKey + ":" + contextID
}

// Set is the set of completed challenge ids. Absent ids are incomplete.
// Values are treated as immutable: the operations below return new sets.
type Set map[string]struct{}

// NewSet builds a set from ids.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is completed.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the completed ids in sorted order.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone copies the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold the same ids.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// Toggle flips membership of id. Callers pass catalog ids only.
func Toggle(s Set, id string) Set {
	next := s.Clone()
	if next.Has(id) {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return next
}

// ResetLocation drops every id belonging to loc and keeps the rest.
func ResetLocation(s Set, loc catalog.Location) Set {
	next := make(Set, len(s))
	prefix := string(loc) + "-"
	for id := range s {
		if strings.HasPrefix(id, prefix) {
			continue
		}
		next[id] = struct{}{}
	}
	return next
}

// CompletedCount counts the catalog challenges of loc present in s.
func CompletedCount(loc catalog.Location, s Set) int {
	n := 0
	for _, c := range catalog.Challenges(loc) {
		if s.Has(c.ID) {
			n++
		}
	}
	return n
}

// Repository is the durable key-value storage behind the progress store.
type Repository interface {
	// Get returns the stored value, or ErrNotFound when the key was never written.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
