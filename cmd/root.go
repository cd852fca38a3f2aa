package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/esgraph/cmd/graph"
	"github.com/LegacyCodeHQ/esgraph/cmd/watch"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "esgraph",
		Short: "Map the modules a JavaScript or TypeScript entry point depends on",
		Long: `esgraph follows import and export-from declarations from an entry module,
resolving relative paths and installed packages, and prints the resulting
module graph.

Use 'esgraph --help' to see all available commands, or 'esgraph <command> --help'
for detailed information about a specific command.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(graph.NewCommand())
	root.AddCommand(watch.NewCommand())

	root.Annotations = map[string]string{
		"buildDate": buildDate,
		"commit":    commit,
	}

	// Show build info alongside the version
	root.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)

	return root
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
