package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/focusnest/crafternoon/internal/catalog"
	"github.com/focusnest/crafternoon/internal/hunt"
)

// bellHaptics rings the terminal bell, the closest thing a terminal has to a pulse.
// It writes to stderr so stdout stays parseable.
type bellHaptics struct {
	w io.Writer
}

func (b bellHaptics) Pulse(context.Context, time.Duration) error {
	_, err := io.WriteString(b.w, "\a")
	return err
}

// NewToggleCommand flips one challenge.
func NewToggleCommand(opts *RootOptions) *cobra.Command {
	var bell bool

	cmd := &cobra.Command{
		Use:   "toggle <challenge-id>",
		Short: "Mark a challenge found, or unmark it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			challenge, ok := catalog.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", catalog.ErrUnknownChallenge, args[0])
			}

			sess, cleanup, err := opts.session(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			var haptics hunt.Haptics
			if bell {
				haptics = bellHaptics{w: cmd.ErrOrStderr()}
			}
			state := sess.Toggle(cmd.Context(), challenge.ID, haptics)
			found := state.Progress.Has(challenge.ID)

			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), toggleOutput{
					ID:     challenge.ID,
					Prompt: challenge.Prompt,
					Found:  found,
					Status: buildStatus(opts.Context, state),
				})
			}

			verb := "unchecked"
			if found {
				verb = "found"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s (%d of %d found)\n",
				challenge.ID, verb, challenge.Prompt,
				state.CompletedCount(challenge.Location()), catalog.ChallengesPerLocation)
			return nil
		},
	}

	cmd.Flags().BoolVar(&bell, "bell", false, "ring the terminal bell after toggling")
	return cmd
}
