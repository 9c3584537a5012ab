package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. fs is where content files are read
// and build output is written.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	root := &cobra.Command{
		Use:   "amantech",
		Short: "Amantech corporate site",
		Long: `amantech serves and builds the Amantech corporate website.

Available commands:
  serve      Run the web server
  build      Export the site as static files
  content    Inspect and validate site content
  version    Print the version

Use "amantech [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(),
		newBuildCmd(fs),
		newContentCmd(fs),
		newVersionCmd(),
	)
	return root
}

// Execute executes the root command
func Execute() {
	if err := NewRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}
