package graph

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/esgraph/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/esgraph/depgraph"
)

// NewCommand returns a new graph command instance.
func NewCommand() *cobra.Command {
	opts := &graphOptions{}

	cmd := &cobra.Command{
		Use:   "graph <entry> [node_modules]",
		Short: "Print every module reachable from an entry point",
		Long: `Print every module reachable from an entry point.

Relative imports are resolved against the importing file, trying .ts, .tsx,
.js and .jsx extensions and directory index files. Bare imports are looked up
in node_modules, which defaults to the directory beside the nearest
package.json above the entry.

Examples:
  esgraph graph src/index.ts
  esgraph graph src/index.ts ../shared/node_modules
  esgraph graph src/index.ts -f mermaid
  esgraph graph src/index.ts -f table --skip-parse-errors
  esgraph graph src/index.ts -w src/index.ts,src/db/pool.ts`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, opts, args)
		},
	}

	opts.AddFlags(cmd, formatters.OutputFormatJSON)
	cmd.Flags().StringSliceVarP(&opts.between, "between", "w", nil, "Only show modules on import paths between these files (comma-separated)")

	return cmd
}

type graphOptions struct {
	Options
	between []string
}

func runGraph(cmd *cobra.Command, opts *graphOptions, args []string) error {
	formatter, err := opts.NewFormatter()
	if err != nil {
		return err
	}

	targets, err := ResolveTargets(args)
	if err != nil {
		return err
	}

	builder, err := opts.NewBuilder(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	result, err := builder.Build(cmd.Context(), targets.Entry, targets.InstallRoot)
	if err != nil {
		var buildErr *depgraph.BuildError
		if errors.As(err, &buildErr) {
			PrintBuildError(cmd.ErrOrStderr(), buildErr, targets.ProjectRoot)
		}
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}

	if len(opts.between) > 0 {
		result, err = narrowBetween(result, opts.between)
		if err != nil {
			return err
		}
	}

	output, err := formatter.Format(result, formatters.FormatOptions{
		Root:  targets.ProjectRoot,
		Label: Label(result, targets.ProjectRoot),
	})
	if err != nil {
		return fmt.Errorf("failed to format graph: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)
	PrintSummary(cmd.ErrOrStderr(), result, targets.ProjectRoot)

	return nil
}

// narrowBetween keeps only the modules on import paths between files.
func narrowBetween(result *depgraph.Result, files []string) (*depgraph.Result, error) {
	var targets, missing []string
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil || !result.Graph.Has(abs) {
			missing = append(missing, f)
			continue
		}
		targets = append(targets, abs)
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("files not found in graph: %v", missing)
	}
	if len(targets) < 2 {
		return nil, fmt.Errorf("at least 2 files required for --between, found %d in graph", len(targets))
	}

	return result.Between(targets), nil
}
