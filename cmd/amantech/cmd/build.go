package cmd

import (
	"fmt"
	"time"

	"github.com/nfrund/amantech/internal/sitebuild"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newBuildCmd(fs afero.Fs) *cobra.Command {
	var (
		outDir      string
		contentFile string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the site as static files",
		Long: `Render the home and products pages and copy the static assets into
an output directory. The exported pages have no live session.

Examples:
  amantech build
  amantech build --out public --content site.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(fs, contentFile)
			if err != nil {
				return err
			}
			written, err := sitebuild.Build(cmd.Context(), sitebuild.Options{
				Fs:      fs,
				OutDir:  outDir,
				Catalog: cat,
				Year:    time.Now().Year(),
			})
			if err != nil {
				return err
			}
			for _, name := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Wrote %d files to %s\n", len(written), outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory")
	cmd.Flags().StringVar(&contentFile, "content", "", "content YAML file (default: built-in content)")
	return cmd
}
