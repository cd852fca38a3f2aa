package graph

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/esgraph/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/esgraph/depgraph"
	"github.com/LegacyCodeHQ/esgraph/internal/config"
	"github.com/LegacyCodeHQ/esgraph/internal/logging"
)

// Options holds the flags shared by the graph and watch commands.
type Options struct {
	Format          string
	ConfigPath      string
	Verbose         bool
	SkipParseErrors bool
	FIFO            bool
}

// AddFlags registers the shared flags on cmd.
func (o *Options) AddFlags(cmd *cobra.Command, defaultFormat formatters.OutputFormat) {
	o.Format = defaultFormat.String()

	cmd.Flags().StringVarP(&o.Format, "format", "f", o.Format,
		fmt.Sprintf("Output format (%s)", formatters.SupportedFormats()))
	cmd.Flags().StringVar(&o.ConfigPath, "config", "", "Config file (default: .esgraph.yaml in the working directory or $HOME)")
	cmd.Flags().BoolVarP(&o.Verbose, "verbose", "v", false, "Log traversal events to stderr")
	cmd.Flags().BoolVar(&o.SkipParseErrors, "skip-parse-errors", false, "Leave modules that fail to parse out of the graph instead of stopping")
	cmd.Flags().BoolVar(&o.FIFO, "fifo", false, "Traverse breadth-first instead of depth-first")
}

// NewBuilder loads the configuration, applies flag overrides and returns a
// builder that logs to stderr.
func (o *Options) NewBuilder(stderr io.Writer) (*depgraph.Builder, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if o.Verbose {
		level = "debug"
	}
	logger, err := logging.New(stderr, level)
	if err != nil {
		return nil, err
	}

	opts, err := cfg.BuilderOptions()
	if err != nil {
		return nil, err
	}
	if o.SkipParseErrors {
		opts = append(opts, depgraph.WithParseErrorPolicy(depgraph.SkipParseErrors))
	}
	if o.FIFO {
		opts = append(opts, depgraph.WithTraversal(depgraph.FIFO))
	}
	opts = append(opts, depgraph.WithLogger(logger))

	return depgraph.NewBuilder(opts...), nil
}

// NewFormatter validates the format flag.
func (o *Options) NewFormatter() (formatters.Formatter, error) {
	return formatters.NewFormatter(o.Format)
}
