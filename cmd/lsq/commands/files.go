package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// NewFilesCommand creates the files command group.
func NewFilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "files",
		Aliases: []string{"file"},
		Short:   "Manage files",
		Long:    "List and inspect downloadable files of variants",
	}

	cmd.AddCommand(newFilesListCommand())
	cmd.AddCommand(newFilesGetCommand())

	return cmd
}

func newFilesListCommand() *cobra.Command {
	var (
		flags     listFlags
		variantID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List files",
		Long:  "List files of every variant, or of one variant with --variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			var resp *lemonsqueezy.ListResponse[lemonsqueezy.File, lemonsqueezy.Included]
			if variantID != "" {
				resp, err = client.Files().ListForVariant(cmd.Context(), variantID, opts)
			} else {
				resp, err = client.Files().List(cmd.Context(), opts)
			}

			if err != nil {
				return fmt.Errorf("failed to list files: %w", err)
			}

			return renderList(cmd.OutOrStdout(), resp,
				[]string{"ID", "Name", "Variant ID", "Size", "Version", "Status"},
				func(file lemonsqueezy.File) []string {
					return []string{
						file.ID,
						file.Attributes.Name,
						formatInt(file.Attributes.VariantID),
						file.Attributes.SizeFormatted,
						orNotAvailable(file.Attributes.Version),
						file.Attributes.Status,
					}
				})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&variantID, "variant", "", "only list files of this variant ID")

	return cmd
}

func newFilesGetCommand() *cobra.Command {
	var flags getFlags

	cmd := &cobra.Command{
		Use:   "get FILE_ID",
		Short: "Get file details",
		Long:  "Display detailed information about a specific file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Files().Get(cmd.Context(), args[0], flags.options())
			if err != nil {
				return fmt.Errorf("failed to get file: %w", err)
			}

			file := resp.Data

			return renderProperties(cmd.OutOrStdout(), resp, []property{
				{"ID", file.ID},
				{"Identifier", file.Attributes.Identifier},
				{"Name", file.Attributes.Name},
				{"Extension", file.Attributes.Extension},
				{"Size", file.Attributes.SizeFormatted},
				{"Version", orNotAvailable(file.Attributes.Version)},
				{"Variant ID", formatInt(file.Attributes.VariantID)},
				{"Status", file.Attributes.Status},
				{"Download URL", orNotAvailable(file.Attributes.DownloadURL)},
				{"Created", formatTime(file.Attributes.CreatedAt)},
			})
		},
	}

	flags.register(cmd)

	return cmd
}
