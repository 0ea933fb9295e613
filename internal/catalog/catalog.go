// Package catalog holds the fixed scavenger-hunt challenges.
//
// The lists are static: nothing creates, edits or removes a challenge at runtime,
// and ids are stable because persisted progress is keyed by them.
package catalog

import (
	"errors"
	"strings"
)

// Location identifies one of the two independent hunts.
type Location string

const (
	Craft   Location = "craft"
	Library Location = "library"
)

// ChallengesPerLocation is the fixed size of every hunt.
const ChallengesPerLocation = 5

var (
	// ErrUnknownLocation indicates a location outside the catalog.
	ErrUnknownLocation = errors.New("unknown location")
	// ErrUnknownChallenge indicates a challenge id outside the catalog.
	ErrUnknownChallenge = errors.New("unknown challenge")
)

// Challenge is one checklist item.
type Challenge struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
	Hint   string `json:"hint"`
}

// Location derives the owning location from the id prefix.
func (c Challenge) Location() Location {
	loc, _ := LocationOf(c.ID)
	return loc
}

// Hunt is a location together with its presentation copy and ordered challenges.
type Hunt struct {
	Location     Location    `json:"location"`
	Label        string      `json:"label"`
	Icon         string      `json:"icon"`
	SectionTitle string      `json:"sectionTitle"`
	BannerTitle  string      `json:"bannerTitle"`
	BannerBody   string      `json:"bannerBody"`
	Challenges   []Challenge `json:"challenges"`
}

var hunts = []Hunt{
	{
		Location:     Craft,
		Label:        "Craft Store",
		Icon:         "🎨",
		SectionTitle: "Your Supply Hunt",
		BannerTitle:  "Supplies gathered!",
		BannerBody:   "Time to head to the library for inspiration.",
		Challenges: []Challenge{
			{ID: "craft-foundation", Prompt: "Find a canvas for our next chapter", Hint: "Poster board, cork board, whatever feels like a fresh start"},
			{ID: "craft-connection", Prompt: `Pick something that says "us"`, Hint: "A color, pattern, or material that feels like our relationship"},
			{ID: "craft-adventure", Prompt: "Grab something that screams adventure", Hint: `What does "new country, new life" look like to you?`},
			{ID: "craft-friends", Prompt: "Find something for the friends we'll make & keep", Hint: "Old roots, new branches - however you see it"},
			{ID: "craft-messy", Prompt: "Choose one gloriously messy thing", Hint: "Glitter, paint, something imperfect - embrace the chaos"},
		},
	},
	{
		Location:     Library,
		Label:        "Library",
		Icon:         "📚",
		SectionTitle: "Your Inspiration Hunt",
		BannerTitle:  "Inspiration found!",
		BannerBody:   "Now let's make a beautiful mess and dream about what's next.",
		Challenges: []Challenge{
			{ID: "library-place", Prompt: "Find a book about a place you want to explore together", Hint: "A travel guide, photo book, or novel set somewhere dreamy"},
			{ID: "library-hobby", Prompt: "Discover something new you might want to try", Hint: "A hobby, skill, or wild idea you've never considered before"},
			{ID: "library-beauty", Prompt: "Find an image that takes your breath away", Hint: "Flip through art books, magazines, anything visual"},
			{ID: "library-words", Prompt: "Hunt for words that feel like the life you want", Hint: "A quote, a headline, a phrase - something to clip or copy"},
			{ID: "library-surprise", Prompt: "Let a random book choose you", Hint: "Close your eyes, wander, and grab whatever you touch first"},
		},
	},
}

var byID = func() map[string]Challenge {
	m := make(map[string]Challenge)
	for _, h := range hunts {
		for _, c := range h.Challenges {
			m[c.ID] = c
		}
	}
	return m
}()

// Locations returns the locations in display order.
func Locations() []Location {
	return []Location{Craft, Library}
}

// Hunts returns a copy of every hunt in display order.
func Hunts() []Hunt {
	out := make([]Hunt, len(hunts))
	for i, h := range hunts {
		out[i] = h
		out[i].Challenges = append([]Challenge(nil), h.Challenges...)
	}
	return out
}

// HuntFor returns the hunt of a location.
func HuntFor(loc Location) (Hunt, error) {
	for _, h := range hunts {
		if h.Location == loc {
			h.Challenges = append([]Challenge(nil), h.Challenges...)
			return h, nil
		}
	}
	return Hunt{}, ErrUnknownLocation
}

// Challenges returns the ordered challenges of a location, or nil for an unknown one.
func Challenges(loc Location) []Challenge {
	h, err := HuntFor(loc)
	if err != nil {
		return nil
	}
	return h.Challenges
}

// Lookup finds a challenge by id.
func Lookup(id string) (Challenge, bool) {
	c, ok := byID[id]
	return c, ok
}

// Known reports whether id belongs to the catalog.
func Known(id string) bool {
	_, ok := byID[id]
	return ok
}

// ParseLocation validates a location name.
func ParseLocation(s string) (Location, error) {
	switch loc := Location(strings.ToLower(strings.TrimSpace(s))); loc {
	case Craft, Library:
		return loc, nil
	default:
		return "", ErrUnknownLocation
	}
}

// LocationOf derives the location from an id's "<location>-" prefix.
func LocationOf(id string) (Location, bool) {
	for _, loc := range Locations() {
		if strings.HasPrefix(id, string(loc)+"-") {
			return loc, true
		}
	}
	return "", false
}
