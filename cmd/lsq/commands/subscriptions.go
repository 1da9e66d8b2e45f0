package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lemonsqueezy/internal/constants"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// NewSubscriptionsCommand creates the subscriptions command group.
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subscription", "subs"},
		Short:   "Manage subscriptions",
		Long:    "List, inspect, pause, unpause, resume, update and cancel subscriptions",
	}

	cmd.AddCommand(newSubscriptionsListCommand())
	cmd.AddCommand(newSubscriptionsGetCommand())
	cmd.AddCommand(newSubscriptionsPauseCommand())
	cmd.AddCommand(newSubscriptionsUnpauseCommand())
	cmd.AddCommand(newSubscriptionsResumeCommand())
	cmd.AddCommand(newSubscriptionsUpdateCommand())
	cmd.AddCommand(newSubscriptionsCancelCommand())

	return cmd
}

func newSubscriptionsListCommand() *cobra.Command {
	var (
		flags   listFlags
		storeID string
		filter  lemonsqueezy.SubscriptionFilter
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		Long:  "List subscriptions of every store, or of one store with --store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			if filter != (lemonsqueezy.SubscriptionFilter{}) {
				opts.WithFilter(filter)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			var resp *lemonsqueezy.ListResponse[lemonsqueezy.Subscription, lemonsqueezy.Included]
			if storeID != "" {
				resp, err = client.Subscriptions().ListForStore(cmd.Context(), storeID, opts)
			} else {
				resp, err = client.Subscriptions().List(cmd.Context(), opts)
			}

			if err != nil {
				return fmt.Errorf("failed to list subscriptions: %w", err)
			}

			return renderList(cmd.OutOrStdout(), resp,
				[]string{"ID", "Customer", "Email", "Product", "Variant", "Status", "Renews"},
				func(sub lemonsqueezy.Subscription) []string {
					return []string{
						sub.ID,
						sub.Attributes.UserName,
						sub.Attributes.UserEmail,
						sub.Attributes.ProductName,
						sub.Attributes.VariantName,
						sub.Attributes.Status,
						formatTime(sub.Attributes.RenewsAt),
					}
				})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&storeID, "store", "", "only list subscriptions of this store ID")
	cmd.Flags().StringVar(&filter.OrderID, "order", "", "only list subscriptions of this order ID")
	cmd.Flags().StringVar(&filter.ProductID, "product", "", "only list subscriptions of this product ID")
	cmd.Flags().StringVar(&filter.VariantID, "variant", "", "only list subscriptions of this variant ID")
	cmd.Flags().StringVar(&filter.UserEmail, "email", "", "only list subscriptions of this customer email")
	cmd.Flags().StringVar(&filter.Status, "status", "", "only list subscriptions with this status")

	return cmd
}

func newSubscriptionsGetCommand() *cobra.Command {
	var flags getFlags

	cmd := &cobra.Command{
		Use:   "get SUBSCRIPTION_ID",
		Short: "Get subscription details",
		Long:  "Display detailed information about a specific subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Subscriptions().Get(cmd.Context(), args[0], flags.options())
			if err != nil {
				return fmt.Errorf("failed to get subscription: %w", err)
			}

			return renderSubscription(cmd.OutOrStdout(), resp)
		},
	}

	flags.register(cmd)

	return cmd
}

func newSubscriptionsPauseCommand() *cobra.Command {
	var (
		mode      string
		resumesAt string
	)

	cmd := &cobra.Command{
		Use:   "pause SUBSCRIPTION_ID",
		Short: "Pause payment collection",
		Long: `Pause payment collection of a subscription.

With --mode void the customer keeps no access while paused; with --mode free
the customer keeps access without paying. --resumes-at schedules the end of
the pause.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pause, err := buildPause(mode, resumesAt)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Subscriptions().Update(cmd.Context(), args[0], &lemonsqueezy.SubscriptionUpdate{
				Pause: pause,
			})
			if err != nil {
				return fmt.Errorf("failed to pause subscription: %w", err)
			}

			return renderSubscription(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", lemonsqueezy.PauseModeVoid, "pause mode (void, free)")
	cmd.Flags().StringVar(&resumesAt, "resumes-at", "", "RFC 3339 time at which collection resumes")

	return cmd
}

func newSubscriptionsUnpauseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unpause SUBSCRIPTION_ID",
		Short: "Resume payment collection",
		Long:  "Clear the pause of a subscription so payment collection resumes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Subscriptions().Update(cmd.Context(), args[0], &lemonsqueezy.SubscriptionUpdate{
				ClearPause: true,
			})
			if err != nil {
				return fmt.Errorf("failed to unpause subscription: %w", err)
			}

			return renderSubscription(cmd.OutOrStdout(), resp)
		},
	}
}

func newSubscriptionsResumeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resume SUBSCRIPTION_ID",
		Short: "Resume a cancelled subscription",
		Long:  "Resume a cancelled subscription before its grace period ends",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			cancelled := false

			resp, err := client.Subscriptions().Update(cmd.Context(), args[0], &lemonsqueezy.SubscriptionUpdate{
				Cancelled: &cancelled,
			})
			if err != nil {
				return fmt.Errorf("failed to resume subscription: %w", err)
			}

			return renderSubscription(cmd.OutOrStdout(), resp)
		},
	}
}

func newSubscriptionsUpdateCommand() *cobra.Command {
	var (
		variantID          int
		billingAnchor      int
		invoiceImmediately bool
		disableProrations  bool
	)

	cmd := &cobra.Command{
		Use:   "update SUBSCRIPTION_ID",
		Short: "Change plan or billing date",
		Long:  "Move a subscription to another variant or change its billing anchor day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update := &lemonsqueezy.SubscriptionUpdate{}

			if cmd.Flags().Changed("variant") {
				update.VariantID = &variantID
			}

			if cmd.Flags().Changed("billing-anchor") {
				update.BillingAnchor = &billingAnchor
			}

			if cmd.Flags().Changed("invoice-immediately") {
				update.InvoiceImmediately = &invoiceImmediately
			}

			if cmd.Flags().Changed("disable-prorations") {
				update.DisableProrations = &disableProrations
			}

			if *update == (lemonsqueezy.SubscriptionUpdate{}) {
				return lemonsqueezy.ErrUpdateRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Subscriptions().Update(cmd.Context(), args[0], update)
			if err != nil {
				return fmt.Errorf("failed to update subscription: %w", err)
			}

			return renderSubscription(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().IntVar(&variantID, "variant", 0, "move the subscription to this variant ID")
	cmd.Flags().IntVar(&billingAnchor, "billing-anchor", 0, "day of the month on which to bill (1-31)")
	cmd.Flags().BoolVar(&invoiceImmediately, "invoice-immediately", false, "charge the prorated amount now")
	cmd.Flags().BoolVar(&disableProrations, "disable-prorations", false, "do not prorate the plan change")

	return cmd
}

func newSubscriptionsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel SUBSCRIPTION_ID",
		Short: "Cancel a subscription",
		Long:  "Cancel a subscription; it stays active until the end of the billing period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Subscriptions().Cancel(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to cancel subscription: %w", err)
			}

			return renderSubscription(cmd.OutOrStdout(), resp)
		},
	}
}

func buildPause(mode, resumesAt string) (*lemonsqueezy.SubscriptionPause, error) {
	if mode != lemonsqueezy.PauseModeVoid && mode != lemonsqueezy.PauseModeFree {
		return nil, fmt.Errorf("%w: %q", constants.ErrInvalidPauseMode, mode)
	}

	pause := &lemonsqueezy.SubscriptionPause{Mode: mode}

	if resumesAt != "" {
		t, err := time.Parse(time.RFC3339, resumesAt)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", constants.ErrInvalidResumesAt, err)
		}

		pause.ResumesAt = &t
	}

	return pause, nil
}

func renderSubscription(w io.Writer, resp *lemonsqueezy.Response[lemonsqueezy.Subscription, lemonsqueezy.Included]) error {
	sub := resp.Data

	paused := constants.NotAvailable
	if sub.Attributes.Pause != nil {
		paused = sub.Attributes.Pause.Mode
		if sub.Attributes.Pause.ResumesAt != nil {
			paused += " until " + formatTime(sub.Attributes.Pause.ResumesAt)
		}
	}

	return renderProperties(w, resp, []property{
		{"ID", sub.ID},
		{"Customer", sub.Attributes.UserName},
		{"Email", sub.Attributes.UserEmail},
		{"Product", sub.Attributes.ProductName},
		{"Variant", sub.Attributes.VariantName},
		{"Status", sub.Attributes.StatusFormatted},
		{"Paused", paused},
		{"Cancelled", formatBool(sub.Attributes.Cancelled)},
		{"Billing Anchor", formatInt(sub.Attributes.BillingAnchor)},
		{"Renews", formatTime(sub.Attributes.RenewsAt)},
		{"Ends", formatTime(sub.Attributes.EndsAt)},
		{"Trial Ends", formatTime(sub.Attributes.TrialEndsAt)},
		{"Created", formatTime(sub.Attributes.CreatedAt)},
	})
}
