package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/LegacyCodeHQ/esgraph/cmd/graph"
	"github.com/LegacyCodeHQ/esgraph/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/esgraph/depgraph"
)

// rebuilder runs one traversal per change and prints the formatted result.
type rebuilder struct {
	builder   *depgraph.Builder
	formatter formatters.Formatter
	targets   graph.Targets
	out       io.Writer
	errOut    io.Writer
	broker    *broker
}

// rebuild builds and prints the graph, returning the directories to watch
// next. A failed build still reports the directories of the partial graph so
// the fix can be picked up.
func (r *rebuilder) rebuild(ctx context.Context) []string {
	result, err := r.builder.Build(ctx, r.targets.Entry, r.targets.InstallRoot)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		var buildErr *depgraph.BuildError
		if errors.As(err, &buildErr) {
			graph.PrintBuildError(r.errOut, buildErr, r.targets.ProjectRoot)
		}
		fmt.Fprintf(r.errOut, "graph rebuild error: %v\n", err)
		return moduleDirs(result, r.targets)
	}

	output, err := r.formatter.Format(result, formatters.FormatOptions{
		Root:  r.targets.ProjectRoot,
		Label: graph.Label(result, r.targets.ProjectRoot),
	})
	if err != nil {
		fmt.Fprintf(r.errOut, "graph format error: %v\n", err)
		return moduleDirs(result, r.targets)
	}

	fmt.Fprintln(r.out, output)
	graph.PrintSummary(r.errOut, result, r.targets.ProjectRoot)
	if r.broker != nil {
		r.broker.publish(output)
	}

	return moduleDirs(result, r.targets)
}

// moduleDirs lists the directories holding the entry and every reached
// module, sorted. Installed packages are left out.
func moduleDirs(result *depgraph.Result, targets graph.Targets) []string {
	dirs := map[string]bool{filepath.Dir(targets.Entry): true}

	if result != nil {
		add := func(path string) {
			if !within(targets.InstallRoot, path) {
				dirs[filepath.Dir(path)] = true
			}
		}
		for _, a := range result.Graph.Assets() {
			add(a.Path())
		}
		for _, s := range result.Skipped {
			add(s.Path)
		}
	}

	out := make([]string, 0, len(dirs))
	for dir := range dirs {
		out = append(out, dir)
	}
	sort.Strings(out)
	return out
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
