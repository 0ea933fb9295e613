package cli

import (
	"github.com/spf13/cobra"
)

// NewStatusCommand prints per-location progress.
func NewStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show progress for both hunts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, cleanup, err := opts.session(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			return writeStatus(cmd.OutOrStdout(), opts.Format, buildStatus(opts.Context, sess.State()))
		},
	}
}
