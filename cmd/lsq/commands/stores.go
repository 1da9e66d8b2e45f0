package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// NewStoresCommand creates the stores command group.
func NewStoresCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stores",
		Aliases: []string{"store"},
		Short:   "Manage stores",
		Long:    "List and inspect the stores of the account",
	}

	cmd.AddCommand(newStoresListCommand())
	cmd.AddCommand(newStoresGetCommand())

	return cmd
}

func newStoresListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stores",
		Long:  "List all stores the API key has access to",
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

			resp, err := client.Stores().List(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("failed to list stores: %w", err)
			}

			return renderList(cmd.OutOrStdout(), resp,
				[]string{"ID", "Name", "Slug", "Domain", "Plan", "Currency", "Total Sales"},
				func(store lemonsqueezy.Store) []string {
					return []string{
						store.ID,
						store.Attributes.Name,
						store.Attributes.Slug,
						store.Attributes.Domain,
						store.Attributes.Plan,
						store.Attributes.Currency,
						formatInt(store.Attributes.TotalSales),
					}
				})
		},
	}

	flags.register(cmd)

	return cmd
}

func newStoresGetCommand() *cobra.Command {
	var flags getFlags

	cmd := &cobra.Command{
		Use:   "get STORE_ID",
		Short: "Get store details",
		Long:  "Display detailed information about a specific store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Stores().Get(cmd.Context(), args[0], flags.options())
			if err != nil {
				return fmt.Errorf("failed to get store: %w", err)
			}

			store := resp.Data

			return renderProperties(cmd.OutOrStdout(), resp, []property{
				{"ID", store.ID},
				{"Name", store.Attributes.Name},
				{"Slug", store.Attributes.Slug},
				{"Domain", store.Attributes.Domain},
				{"URL", store.Attributes.URL},
				{"Plan", store.Attributes.Plan},
				{"Country", orNotAvailable(store.Attributes.CountryNicename)},
				{"Currency", store.Attributes.Currency},
				{"Total Sales", formatInt(store.Attributes.TotalSales)},
				{"Total Revenue", formatInt(store.Attributes.TotalRevenue)},
				{"30 Day Sales", formatInt(store.Attributes.ThirtyDaySales)},
				{"30 Day Revenue", formatInt(store.Attributes.ThirtyDayRevenue)},
				{"Created", formatTime(store.Attributes.CreatedAt)},
				{"Updated", formatTime(store.Attributes.UpdatedAt)},
			})
		},
	}

	flags.register(cmd)

	return cmd
}
