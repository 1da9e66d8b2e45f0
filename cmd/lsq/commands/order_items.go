package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// NewOrderItemsCommand creates the order-items command group.
func NewOrderItemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "order-items",
		Aliases: []string{"order-item"},
		Short:   "Manage order items",
		Long:    "List and inspect the line items of orders",
	}

	cmd.AddCommand(newOrderItemsListCommand())
	cmd.AddCommand(newOrderItemsGetCommand())

	return cmd
}

func newOrderItemsListCommand() *cobra.Command {
	var (
		flags     listFlags
		orderID   string
		productID string
		variantID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List order items",
		Long:  "List order items, or the items of one order with --order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			if productID != "" || variantID != "" {
				opts.WithFilter(lemonsqueezy.OrderItemFilter{ProductID: productID, VariantID: variantID})
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			var resp *lemonsqueezy.ListResponse[lemonsqueezy.OrderItem, lemonsqueezy.Included]
			if orderID != "" {
				resp, err = client.OrderItems().ListForOrder(cmd.Context(), orderID, opts)
			} else {
				resp, err = client.OrderItems().List(cmd.Context(), opts)
			}

			if err != nil {
				return fmt.Errorf("failed to list order items: %w", err)
			}

			return renderList(cmd.OutOrStdout(), resp,
				[]string{"ID", "Order ID", "Product", "Variant", "Quantity", "Price"},
				func(item lemonsqueezy.OrderItem) []string {
					return []string{
						item.ID,
						formatInt(item.Attributes.OrderID),
						item.Attributes.ProductName,
						item.Attributes.VariantName,
						formatInt(item.Attributes.Quantity),
						formatInt(item.Attributes.Price),
					}
				})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&orderID, "order", "", "only list items of this order ID")
	cmd.Flags().StringVar(&productID, "product", "", "only list items of this product ID")
	cmd.Flags().StringVar(&variantID, "variant", "", "only list items of this variant ID")

	return cmd
}

func newOrderItemsGetCommand() *cobra.Command {
	var flags getFlags

	cmd := &cobra.Command{
		Use:   "get ORDER_ITEM_ID",
		Short: "Get order item details",
		Long:  "Display detailed information about a specific order item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.OrderItems().Get(cmd.Context(), args[0], flags.options())
			if err != nil {
				return fmt.Errorf("failed to get order item: %w", err)
			}

			item := resp.Data

			return renderProperties(cmd.OutOrStdout(), resp, []property{
				{"ID", item.ID},
				{"Order ID", formatInt(item.Attributes.OrderID)},
				{"Product ID", formatInt(item.Attributes.ProductID)},
				{"Product", item.Attributes.ProductName},
				{"Variant ID", formatInt(item.Attributes.VariantID)},
				{"Variant", item.Attributes.VariantName},
				{"Quantity", formatInt(item.Attributes.Quantity)},
				{"Price", formatInt(item.Attributes.Price)},
				{"Created", formatTime(item.Attributes.CreatedAt)},
			})
		},
	}

	flags.register(cmd)

	return cmd
}
