package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/focusnest/crafternoon/internal/catalog"
	"github.com/focusnest/crafternoon/internal/hunt"
	"github.com/focusnest/crafternoon/internal/view"
)

type locationStatus struct {
	Location  catalog.Location `json:"location"`
	Label     string           `json:"label"`
	Completed int              `json:"completed"`
	Total     int              `json:"total"`
	Complete  bool             `json:"complete"`
	Items     []itemStatus     `json:"items"`
}

type itemStatus struct {
	ID        string `json:"id"`
	Prompt    string `json:"prompt"`
	Completed bool   `json:"completed"`
}

type statusOutput struct {
	Context   string           `json:"context"`
	Locations []locationStatus `json:"locations"`
}

type resetOutput struct {
	Reset  bool         `json:"reset"`
	Status statusOutput `json:"status"`
}

type toggleOutput struct {
	ID     string       `json:"id"`
	Prompt string       `json:"prompt"`
	Found  bool         `json:"found"`
	Status statusOutput `json:"status"`
}

func buildStatus(contextID string, s hunt.State) statusOutput {
	out := statusOutput{Context: contextID}
	page, ok := view.Build(s)
	if !ok {
		return out
	}
	for _, tab := range page.Tabs {
		ls := locationStatus{
			Location:  tab.Location,
			Label:     tab.Label,
			Completed: tab.Completed,
			Total:     tab.Total,
			Complete:  tab.BannerVisible,
		}
		for _, item := range tab.Items {
			ls.Items = append(ls.Items, itemStatus{ID: item.ID, Prompt: item.Prompt, Completed: item.Completed})
		}
		out.Locations = append(out.Locations, ls)
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeStatus(w io.Writer, format string, out statusOutput) error {
	if format == "json" {
		return writeJSON(w, out)
	}

	for i, loc := range out.Locations {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s: %d of %d found\n", loc.Label, loc.Completed, loc.Total)
		if loc.Complete {
			fmt.Fprintln(w, "  all done!")
		}
		for _, item := range loc.Items {
			mark := " "
			if item.Completed {
				mark = "x"
			}
			fmt.Fprintf(w, "  [%s] %-17s %s\n", mark, item.ID, item.Prompt)
		}
	}
	return nil
}
