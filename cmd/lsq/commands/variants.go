package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lemonsqueezy/internal/constants"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// NewVariantsCommand creates the variants command group.
func NewVariantsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "variants",
		Aliases: []string{"variant"},
		Short:   "Manage variants",
		Long:    "List and inspect product variants",
	}

	cmd.AddCommand(newVariantsListCommand())
	cmd.AddCommand(newVariantsGetCommand())

	return cmd
}

func newVariantsListCommand() *cobra.Command {
	var (
		flags     listFlags
		productID string
		status    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List variants",
		Long:  "List variants of every product, or of one product with --product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			if status != "" {
				opts.WithFilter(lemonsqueezy.VariantFilter{Status: status})
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			var resp *lemonsqueezy.ListResponse[lemonsqueezy.Variant, lemonsqueezy.Included]
			if productID != "" {
				resp, err = client.Variants().ListForProduct(cmd.Context(), productID, opts)
			} else {
				resp, err = client.Variants().List(cmd.Context(), opts)
			}

			if err != nil {
				return fmt.Errorf("failed to list variants: %w", err)
			}

			return renderList(cmd.OutOrStdout(), resp,
				[]string{"ID", "Name", "Product ID", "Price", "Subscription", "Interval", "Status"},
				func(variant lemonsqueezy.Variant) []string {
					return []string{
						variant.ID,
						variant.Attributes.Name,
						formatInt(variant.Attributes.ProductID),
						formatInt(variant.Attributes.Price),
						formatBool(variant.Attributes.IsSubscription),
						formatInterval(variant.Attributes),
						variant.Attributes.Status,
					}
				})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&productID, "product", "", "only list variants of this product ID")
	cmd.Flags().StringVar(&status, "status", "", "only list variants with this status (pending, draft, published)")

	return cmd
}

func newVariantsGetCommand() *cobra.Command {
	var flags getFlags

	cmd := &cobra.Command{
		Use:   "get VARIANT_ID",
		Short: "Get variant details",
		Long:  "Display detailed information about a specific variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Variants().Get(cmd.Context(), args[0], flags.options())
			if err != nil {
				return fmt.Errorf("failed to get variant: %w", err)
			}

			variant := resp.Data

			return renderProperties(cmd.OutOrStdout(), resp, []property{
				{"ID", variant.ID},
				{"Name", variant.Attributes.Name},
				{"Slug", variant.Attributes.Slug},
				{"Product ID", formatInt(variant.Attributes.ProductID)},
				{"Price", formatInt(variant.Attributes.Price)},
				{"Subscription", formatBool(variant.Attributes.IsSubscription)},
				{"Interval", formatInterval(variant.Attributes)},
				{"Free Trial", formatBool(variant.Attributes.HasFreeTrial)},
				{"License Keys", formatBool(variant.Attributes.HasLicenseKeys)},
				{"Status", variant.Attributes.StatusFormatted},
				{"Created", formatTime(variant.Attributes.CreatedAt)},
			})
		},
	}

	flags.register(cmd)

	return cmd
}

// formatInterval renders the billing interval of a subscription variant,
// e.g. "1 month".
func formatInterval(attrs lemonsqueezy.VariantAttributes) string {
	if attrs.Interval == nil {
		return constants.NotAvailable
	}

	count := 1
	if attrs.IntervalCount != nil {
		count = *attrs.IntervalCount
	}

	return fmt.Sprintf("%d %s", count, *attrs.Interval)
}
