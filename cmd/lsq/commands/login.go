package commands

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/lemonsqueezy/internal/constants"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var noVerify bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key",
		Long: `Store a Lemon Squeezy API key in the config file.

The key is taken from --api-key or LSQ_API_KEY, or read from the terminal
without echo. Unless --no-verify is given the key is checked against the
authenticated user endpoint first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := viper.GetString(constants.ConfigKeyAPIKey)
			if apiKey == "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), "API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout())
				apiKey = string(byteKey)
			}

			apiKey = strings.TrimSpace(apiKey)
			if apiKey == "" {
				return constants.ErrEmptyAPIKey
			}

			greeting := "API key saved"

			if !noVerify {
				client, err := newClient(apiKey)
				if err != nil {
					return err
				}

				me, err := client.Users().Me(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to verify API key: %w", err)
				}

				greeting = fmt.Sprintf("Logged in as %s <%s>", me.Data.Attributes.Name, me.Data.Attributes.Email)
			}

			path, err := configFilePath()
			if err != nil {
				return err
			}

			config, err := readConfigFile(path)
			if err != nil {
				return err
			}

			config.APIKey = apiKey

			err = writeConfigFile(path, config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), greeting)

			return nil
		},
	}

	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "save the key without calling the API")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API key",
		Long:  "Remove the API key from the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath()
			if err != nil {
				return err
			}

			config, err := readConfigFile(path)
			if err != nil {
				return err
			}

			if config.APIKey == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")

				return nil
			}

			config.APIKey = ""

			err = writeConfigFile(path, config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}
