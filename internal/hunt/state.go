// Package hunt owns the application state of one browser context and the
// reducer that moves it between states.
package hunt

import (
	"github.com/focusnest/crafternoon/internal/catalog"
	"github.com/focusnest/crafternoon/internal/progress"
)

// DefaultLocation is the tab shown to a new browser context.
const DefaultLocation = catalog.Craft

// State is everything the view needs. Mounted stays false until persisted
// progress has been hydrated; an unmounted state renders nothing.
type State struct {
	Mounted  bool
	Active   catalog.Location
	Progress progress.Set
}

// Initial returns the state before hydration.
func Initial() State {
	return State{Active: DefaultLocation, Progress: progress.Set{}}
}

// CompletedCount is progress.CompletedCount over this state.
func (s State) CompletedCount(loc catalog.Location) int {
	return progress.CompletedCount(loc, s.Progress)
}

// Complete reports whether every challenge of loc is done.
func (s State) Complete(loc catalog.Location) bool {
	return s.CompletedCount(loc) == catalog.ChallengesPerLocation
}

// Action is an input to Reduce.
type Action interface {
	// mutates reports whether the action can change persisted progress.
	mutates() bool
}

// Hydrate installs the loaded progress and mounts the state.
type Hydrate struct{ Progress progress.Set }

// SelectTab switches the visible location.
type SelectTab struct{ Location catalog.Location }

// ToggleChallenge flips one challenge.
type ToggleChallenge struct{ ID string }

// ResetLocation clears one location. Confirmation happens before dispatch.
type ResetLocation struct{ Location catalog.Location }

func (Hydrate) mutates() bool         { return false }
func (SelectTab) mutates() bool       { return false }
func (ToggleChallenge) mutates() bool { return true }
func (ResetLocation) mutates() bool   { return true }

// Reduce is pure: it never touches its input state's progress set.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Hydrate:
		s.Mounted = true
		if a.Progress == nil {
			s.Progress = progress.Set{}
		} else {
			s.Progress = a.Progress.Clone()
		}
	case SelectTab:
		if _, err := catalog.HuntFor(a.Location); err == nil {
			s.Active = a.Location
		}
	case ToggleChallenge:
		s.Progress = progress.Toggle(s.Progress, a.ID)
	case ResetLocation:
		s.Progress = progress.ResetLocation(s.Progress, a.Location)
	}
	return s
}
