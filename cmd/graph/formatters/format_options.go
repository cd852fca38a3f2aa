package formatters

// FormatOptions contains optional parameters for formatting module graphs.
type FormatOptions struct {
	// Label is an optional title for dot and mermaid output
	Label string
	// Root is the directory module paths are printed relative to.
	// Paths outside Root, or all paths when Root is empty, are printed as-is.
	Root string
}
