package depgraph

import (
	"errors"
	"fmt"
)

// ErrEntryNotFound is returned when the entry point is not an existing file.
var ErrEntryNotFound = errors.New("entry module not found")

// BuildError stops a traversal. Path is the module being processed when the
// failure happened and Built is how many assets were in the graph at that point.
type BuildError struct {
	Path  string
	Built int
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("dependency graph incomplete: stopped at %s after %d module(s): %v", e.Path, e.Built, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
