package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Manage orders",
		Long:    "List and inspect orders",
	}

	cmd.AddCommand(newOrdersListCommand())
	cmd.AddCommand(newOrdersGetCommand())

	return cmd
}

func newOrdersListCommand() *cobra.Command {
	var (
		flags   listFlags
		storeID string
		email   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Long:  "List orders of every store, or of one store with --store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			if email != "" {
				opts.WithFilter(lemonsqueezy.OrderFilter{UserEmail: email})
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			var resp *lemonsqueezy.ListResponse[lemonsqueezy.Order, lemonsqueezy.Included]
			if storeID != "" {
				resp, err = client.Orders().ListForStore(cmd.Context(), storeID, opts)
			} else {
				resp, err = client.Orders().List(cmd.Context(), opts)
			}

			if err != nil {
				return fmt.Errorf("failed to list orders: %w", err)
			}

			return renderList(cmd.OutOrStdout(), resp,
				[]string{"ID", "Number", "Customer", "Email", "Status", "Total", "Created"},
				func(order lemonsqueezy.Order) []string {
					return []string{
						order.ID,
						formatInt(order.Attributes.OrderNumber),
						order.Attributes.UserName,
						order.Attributes.UserEmail,
						order.Attributes.Status,
						order.Attributes.TotalFormatted,
						formatTime(order.Attributes.CreatedAt),
					}
				})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&storeID, "store", "", "only list orders of this store ID")
	cmd.Flags().StringVar(&email, "email", "", "only list orders placed with this email")

	return cmd
}

func newOrdersGetCommand() *cobra.Command {
	var flags getFlags

	cmd := &cobra.Command{
		Use:   "get ORDER_ID",
		Short: "Get order details",
		Long:  "Display detailed information about a specific order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Orders().Get(cmd.Context(), args[0], flags.options())
			if err != nil {
				return fmt.Errorf("failed to get order: %w", err)
			}

			order := resp.Data
			properties := []property{
				{"ID", order.ID},
				{"Identifier", order.Attributes.Identifier},
				{"Number", formatInt(order.Attributes.OrderNumber)},
				{"Store ID", formatInt(order.Attributes.StoreID)},
				{"Customer", order.Attributes.UserName},
				{"Email", order.Attributes.UserEmail},
				{"Status", order.Attributes.StatusFormatted},
				{"Subtotal", order.Attributes.SubtotalFormatted},
				{"Discount", order.Attributes.DiscountTotalFormatted},
				{"Tax", order.Attributes.TaxFormatted},
				{"Total", order.Attributes.TotalFormatted},
				{"Refunded", formatBool(order.Attributes.Refunded)},
				{"Test Mode", formatBool(order.Attributes.TestMode)},
				{"Created", formatTime(order.Attributes.CreatedAt)},
			}

			if item := order.Attributes.FirstOrderItem; item != nil {
				properties = append(properties,
					property{"Product", item.ProductName},
					property{"Variant", item.VariantName},
				)
			}

			return renderProperties(cmd.OutOrStdout(), resp, properties)
		},
	}

	flags.register(cmd)

	return cmd
}
