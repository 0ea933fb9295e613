package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/focusnest/crafternoon/internal/catalog"
	"github.com/focusnest/crafternoon/internal/hunt"
)

// promptConfirmer asks on out (stderr, so stdout stays machine-readable) and reads
// a y/N answer from in.
type promptConfirmer struct {
	in  io.Reader
	out io.Writer
}

func (p promptConfirmer) Confirm(_ context.Context, prompt string) bool {
	fmt.Fprintf(p.out, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// NewResetCommand clears one location after confirmation.
func NewResetCommand(opts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset <location>",
		Short: "Start a hunt over",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := catalog.ParseLocation(args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}

			sess, cleanup, err := opts.session(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			var confirmer hunt.Confirmer = promptConfirmer{in: cmd.InOrStdin(), out: cmd.ErrOrStderr()}
			if yes {
				confirmer = hunt.Confirmed(true)
			}

			state, applied := sess.ResetLocation(cmd.Context(), loc, confirmer)
			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), resetOutput{Reset: applied, Status: buildStatus(opts.Context, state)})
			}
			if !applied {
				fmt.Fprintln(cmd.OutOrStdout(), "unchanged")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s reset (%d of %d found)\n", loc, state.CompletedCount(loc), catalog.ChallengesPerLocation)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
