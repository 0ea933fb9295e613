// Package view projects hunt state onto the page model and renders it.
package view

import (
	"fmt"

	"github.com/focusnest/crafternoon/internal/catalog"
	"github.com/focusnest/crafternoon/internal/hunt"
)

// Page copy shown around the two hunts.
const (
	Title    = "Crafternoon Scavenger Hunt"
	Subtitle = "Dreaming about our next chapter together"
	VibeTag  = "Experimental & Messy"
	Footer   = "I can't wait to spend this day with you."
)

// Page is the template data for the whole checklist.
type Page struct {
	Title       string
	Subtitle    string
	VibeTag     string
	Footer      string
	PulseMs     int
	ResetPrompt string
	Tabs        []Tab
}

// Tab is one location's section plus its tab button.
type Tab struct {
	Location      catalog.Location
	Label         string
	Icon          string
	Active        bool
	Completed     int
	Total         int
	Percent       float64
	Status        string
	Counter       string
	BannerVisible bool
	BannerTitle   string
	BannerBody    string
	SectionTitle  string
	Items         []Item
}

// Item is one checklist row.
type Item struct {
	ID        string
	Prompt    string
	Hint      string
	Completed bool
}

// Build returns the page for s. It reports false for an unmounted state, which
// must render as nothing.
func Build(s hunt.State) (Page, bool) {
	if !s.Mounted {
		return Page{}, false
	}

	page := Page{
		Title:       Title,
		Subtitle:    Subtitle,
		VibeTag:     VibeTag,
		Footer:      Footer,
		PulseMs:     int(hunt.PulseDuration.Milliseconds()),
		ResetPrompt: hunt.ResetPrompt,
	}

	for _, h := range catalog.Hunts() {
		done := s.CompletedCount(h.Location)
		total := len(h.Challenges)
		tab := Tab{
			Location:      h.Location,
			Label:         h.Label,
			Icon:          h.Icon,
			Active:        s.Active == h.Location,
			Completed:     done,
			Total:         total,
			Percent:       Percent(done, total),
			Status:        fmt.Sprintf("%d/%d", done, total),
			Counter:       fmt.Sprintf("%d of %d found", done, total),
			BannerVisible: done == catalog.ChallengesPerLocation,
			BannerTitle:   h.BannerTitle,
			BannerBody:    h.BannerBody,
			SectionTitle:  h.SectionTitle,
		}
		for _, c := range h.Challenges {
			tab.Items = append(tab.Items, Item{
				ID:        c.ID,
				Prompt:    c.Prompt,
				Hint:      c.Hint,
				Completed: s.Progress.Has(c.ID),
			})
		}
		page.Tabs = append(page.Tabs, tab)
	}
	return page, true
}

// Percent is the progress bar width.
func Percent(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}
