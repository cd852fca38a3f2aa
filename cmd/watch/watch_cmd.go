package watch

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/esgraph/cmd/graph"
	"github.com/LegacyCodeHQ/esgraph/cmd/graph/formatters"
)

type watchOptions struct {
	graph.Options
	port int
}

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <entry> [node_modules]",
		Short: "Rebuild the module graph whenever a reached module changes",
		Long: `Build the module graph, then watch the directories of every reached module
and print a fresh graph after each change. With --port the latest graph is also
served over HTTP, with live updates as server-sent events on /events.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, args)
		},
	}

	opts.AddFlags(cmd, formatters.OutputFormatDOT)
	cmd.Flags().IntVarP(&opts.port, "port", "P", 0, "Serve the latest graph on this HTTP port (0 disables)")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions, args []string) error {
	formatter, err := opts.NewFormatter()
	if err != nil {
		return err
	}

	targets, err := graph.ResolveTargets(args)
	if err != nil {
		return err
	}

	builder, err := opts.NewBuilder(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	r := &rebuilder{
		builder:   builder,
		formatter: formatter,
		targets:   targets,
		out:       cmd.OutOrStdout(),
		errOut:    cmd.ErrOrStderr(),
		broker:    newBroker(),
	}

	if opts.port > 0 {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", opts.port))
		if err != nil {
			return fmt.Errorf("failed to listen on port %d: %w", opts.port, err)
		}
		srv := newServer(r.broker, opts.port)
		go func() {
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				fmt.Fprintf(r.errOut, "server error: %v\n", err)
			}
		}()
		defer srv.Close()

		fmt.Fprintf(r.errOut, "Serving at http://localhost:%d\n", opts.port)
	}

	fmt.Fprintf(r.errOut, "Watching %s\n", targets.Entry)
	fmt.Fprintf(r.errOut, "Press Ctrl+C to stop\n")

	return watchAndRebuild(ctx, r)
}

