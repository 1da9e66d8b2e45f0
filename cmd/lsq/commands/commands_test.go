package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, subcmd := range cmd.Commands() {
		names = append(names, subcmd.Name())
	}

	return names
}

func TestResourceCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cmd     *cobra.Command
		use     string
		aliases []string
		getUse  string
	}{
		{"stores", NewStoresCommand(), "stores", []string{"store"}, "get STORE_ID"},
		{"products", NewProductsCommand(), "products", []string{"product"}, "get PRODUCT_ID"},
		{"variants", NewVariantsCommand(), "variants", []string{"variant"}, "get VARIANT_ID"},
		{"files", NewFilesCommand(), "files", []string{"file"}, "get FILE_ID"},
		{"orders", NewOrdersCommand(), "orders", []string{"order"}, "get ORDER_ID"},
		{"order items", NewOrderItemsCommand(), "order-items", []string{"order-item"}, "get ORDER_ITEM_ID"},
		{"subscriptions", NewSubscriptionsCommand(), "subscriptions", []string{"subscription", "subs"}, "get SUBSCRIPTION_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.Equal(t, tt.aliases, tt.cmd.Aliases)
			assert.NotEmpty(t, tt.cmd.Short)

			names := subcommandNames(tt.cmd)
			assert.Contains(t, names, "list")
			assert.Contains(t, names, "get")

			list, _, err := tt.cmd.Find([]string{"list"})
			require.NoError(t, err)
			assert.NotNil(t, list.RunE)

			for _, flag := range []string{"page", "per-page", "include"} {
				assert.NotNil(t, list.Flags().Lookup(flag), "list flag %s should exist", flag)
			}

			get, _, err := tt.cmd.Find([]string{"get"})
			require.NoError(t, err)
			assert.Equal(t, tt.getUse, get.Use)
			assert.NotNil(t, get.Flags().Lookup("include"))
			require.Error(t, get.Args(get, nil))
			require.NoError(t, get.Args(get, []string{"1"}))
		})
	}
}

func TestListFilterFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cmd   *cobra.Command
		flags []string
	}{
		{NewOrdersCommand(), []string{"store", "email"}},
		{NewOrderItemsCommand(), []string{"order", "product", "variant"}},
		{NewProductsCommand(), []string{"store"}},
		{NewVariantsCommand(), []string{"product", "status"}},
		{NewFilesCommand(), []string{"variant"}},
		{NewSubscriptionsCommand(), []string{"store", "order", "product", "variant", "email", "status"}},
	}

	for _, tt := range tests {
		list, _, err := tt.cmd.Find([]string{"list"})
		require.NoError(t, err)

		for _, flag := range tt.flags {
			assert.NotNil(t, list.Flags().Lookup(flag), "%s list flag %s should exist", tt.cmd.Name(), flag)
		}
	}
}

func TestNewSubscriptionsCommand(t *testing.T) {
	t.Parallel()

	cmd := NewSubscriptionsCommand()
	assert.Equal(t, "Manage subscriptions", cmd.Short)
	assert.Len(t, cmd.Commands(), 7)

	names := subcommandNames(cmd)
	for _, name := range []string{"list", "get", "pause", "unpause", "resume", "update", "cancel"} {
		assert.Contains(t, names, name)
	}

	pause, _, err := cmd.Find([]string{"pause"})
	require.NoError(t, err)
	assert.Equal(t, "pause SUBSCRIPTION_ID", pause.Use)
	assert.Equal(t, "void", pause.Flags().Lookup("mode").DefValue)
	assert.NotNil(t, pause.Flags().Lookup("resumes-at"))

	update, _, err := cmd.Find([]string{"update"})
	require.NoError(t, err)

	for _, flag := range []string{"variant", "billing-anchor", "invoice-immediately", "disable-prorations"} {
		assert.NotNil(t, update.Flags().Lookup(flag), "update flag %s should exist", flag)
	}
}

func TestNewLoginCommand(t *testing.T) {
	t.Parallel()

	cmd := NewLoginCommand()
	assert.Equal(t, "login", cmd.Use)
	assert.Equal(t, "Store an API key", cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("no-verify"))

	logout := NewLogoutCommand()
	assert.Equal(t, "logout", logout.Use)
	assert.NotNil(t, logout.RunE)
}

func TestNewMeCommand(t *testing.T) {
	t.Parallel()

	cmd := NewMeCommand()
	assert.Equal(t, "me", cmd.Use)
	assert.Equal(t, []string{"whoami"}, cmd.Aliases)
	require.Error(t, cmd.Args(cmd, []string{"extra"}))
}
