package cmd

import (
	"fmt"
	"os"

	"github.com/nfrund/amantech/cmd/amantech/internal/listing"
	"github.com/nfrund/amantech/internal/content"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newContentCmd(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect and validate site content",
		Long: `The content command works on the YAML document the site is built from.
Without a file argument the effective content is used: CONTENT_PATH when
set, the built-in content otherwise.

Examples:
  amantech content validate site.yaml
  amantech content show > site.yaml
  amantech content list services --output json`,
	}
	cmd.AddCommand(
		newContentValidateCmd(fs),
		newContentShowCmd(fs),
		newContentListCmd(fs),
	)
	return cmd
}

func newContentValidateCmd(fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a content file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := effectiveFile(args)
			cat, err := loadCatalog(fs, file)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "❌ Content validation failed: %v\n", err)
				return err
			}
			if file == "" {
				file = "(built-in)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Content %s is valid\n", file)
			listing.Summary(cmd.OutOrStdout(), cat)
			return nil
		},
	}
}

func newContentShowCmd(fs afero.Fs) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective content as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = os.Getenv("CONTENT_PATH")
			}
			if file == "" {
				_, err := cmd.OutOrStdout().Write(content.DefaultYAML())
				return err
			}
			cat, err := content.Load(fs, file)
			if err != nil {
				return err
			}
			data, err := content.Marshal(cat)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "content YAML file")
	return cmd
}

func newContentListCmd(fs afero.Fs) *cobra.Command {
	var (
		file   string
		output string
	)
	cmd := &cobra.Command{
		Use:       "list <" + listing.KindsUsage() + ">",
		Short:     "List one kind of content record",
		Args:      cobra.ExactArgs(1),
		ValidArgs: listing.Kinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = os.Getenv("CONTENT_PATH")
			}
			cat, err := loadCatalog(fs, file)
			if err != nil {
				return err
			}
			rows, err := listing.Rows(cat, args[0])
			if err != nil {
				return err
			}
			switch output {
			case "table":
				listing.DisplayTable(cmd.OutOrStdout(), rows)
				return nil
			case "json":
				return listing.DisplayJSON(cmd.OutOrStdout(), rows)
			default:
				return fmt.Errorf("unknown output format %q (use table or json)", output)
			}
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "content YAML file")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table or json")
	return cmd
}

func effectiveFile(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return os.Getenv("CONTENT_PATH")
}

// loadCatalog reads file, or returns the built-in content when file is empty.
func loadCatalog(fs afero.Fs, file string) (*content.Catalog, error) {
	if file == "" {
		return content.Default(), nil
	}
	return content.Load(fs, file)
}
