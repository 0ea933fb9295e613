package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/focusnest/crafternoon/internal/catalog"
)

// NewCatalogCommand lists every challenge.
func NewCatalogCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the challenges of both hunts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			hunts := catalog.Hunts()
			if opts.Format == "json" {
				return writeJSON(w, hunts)
			}
			for i, h := range hunts {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s %s\n", h.Icon, h.Label)
				for _, c := range h.Challenges {
					fmt.Fprintf(w, "  %-17s %s\n", c.ID, c.Prompt)
					fmt.Fprintf(w, "  %-17s %s\n", "", c.Hint)
				}
			}
			return nil
		},
	}
}
