package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/focusnest/crafternoon/internal/config"
	"github.com/focusnest/crafternoon/internal/datastore"
	"github.com/focusnest/crafternoon/internal/hunt"
	"github.com/focusnest/crafternoon/internal/progress"
	"github.com/focusnest/crafternoon/internal/shared/logging"
)

// DefaultContext is the browser context the CLI works on unless told otherwise.
const DefaultContext = "local"

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// OpenFunc opens the progress repository; it returns a cleanup func.
type OpenFunc func(ctx context.Context) (progress.Repository, func(), error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Context string
	Format  string
	Verbose bool

	// Open defaults to the repository selected by the environment.
	Open OpenFunc
}

// NewRootCommand creates the root command for huntctl.
func NewRootCommand(open OpenFunc) *cobra.Command {
	opts := &RootOptions{Open: open}
	if opts.Open == nil {
		opts.Open = openFromEnv
	}

	cmd := &cobra.Command{
		Use:           "huntctl",
		Short:         "Inspect and edit scavenger hunt progress",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Context == "" {
				return fmt.Errorf("--context must not be empty")
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Context, "context", DefaultContext, "browser context id whose progress to use")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log storage warnings to stderr")

	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewToggleCommand(opts))
	cmd.AddCommand(NewResetCommand(opts))
	cmd.AddCommand(NewCatalogCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func openFromEnv(ctx context.Context) (progress.Repository, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return datastore.Open(ctx, cfg)
}

func (o *RootOptions) logger(stderr io.Writer) *slog.Logger {
	if !o.Verbose {
		return logging.Discard()
	}
	return logging.NewTextLogger(stderr, "huntctl", "debug")
}

// session opens the store and returns a hydrated session for the selected context.
func (o *RootOptions) session(cmd *cobra.Command) (*hunt.Session, func(), error) {
	repo, cleanup, err := o.Open(cmd.Context())
	if err != nil {
		return nil, nil, fmt.Errorf("open datastore: %w", err)
	}

	logger := o.logger(cmd.ErrOrStderr())
	store, err := progress.NewStore(repo, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	sess := hunt.NewSession(progress.ScopedKey(o.Context), store, logger)
	sess.Hydrate(cmd.Context())
	return sess, cleanup, nil
}
