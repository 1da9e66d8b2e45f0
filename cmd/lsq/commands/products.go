package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Manage products",
		Long:    "List and inspect products",
	}

	cmd.AddCommand(newProductsListCommand())
	cmd.AddCommand(newProductsGetCommand())

	return cmd
}

func newProductsListCommand() *cobra.Command {
	var (
		flags   listFlags
		storeID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Long:  "List products of every store, or of one store with --store",
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

			var resp *lemonsqueezy.ListResponse[lemonsqueezy.Product, lemonsqueezy.Included]
			if storeID != "" {
				resp, err = client.Products().ListForStore(cmd.Context(), storeID, opts)
			} else {
				resp, err = client.Products().List(cmd.Context(), opts)
			}

			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			return renderList(cmd.OutOrStdout(), resp,
				[]string{"ID", "Name", "Status", "Price", "Store ID"},
				func(product lemonsqueezy.Product) []string {
					return []string{
						product.ID,
						product.Attributes.Name,
						product.Attributes.Status,
						product.Attributes.PriceFormatted,
						formatInt(product.Attributes.StoreID),
					}
				})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&storeID, "store", "", "only list products of this store ID")

	return cmd
}

func newProductsGetCommand() *cobra.Command {
	var flags getFlags

	cmd := &cobra.Command{
		Use:   "get PRODUCT_ID",
		Short: "Get product details",
		Long:  "Display detailed information about a specific product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Products().Get(cmd.Context(), args[0], flags.options())
			if err != nil {
				return fmt.Errorf("failed to get product: %w", err)
			}

			product := resp.Data

			return renderProperties(cmd.OutOrStdout(), resp, []property{
				{"ID", product.ID},
				{"Name", product.Attributes.Name},
				{"Slug", product.Attributes.Slug},
				{"Status", product.Attributes.StatusFormatted},
				{"Price", product.Attributes.PriceFormatted},
				{"Pay What You Want", formatBool(product.Attributes.PayWhatYouWant)},
				{"Buy Now URL", orNotAvailable(product.Attributes.BuyNowURL)},
				{"Store ID", formatInt(product.Attributes.StoreID)},
				{"Test Mode", formatBool(product.Attributes.TestMode)},
				{"Created", formatTime(product.Attributes.CreatedAt)},
				{"Updated", formatTime(product.Attributes.UpdatedAt)},
			})
		},
	}

	flags.register(cmd)

	return cmd
}
