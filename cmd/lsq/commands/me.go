package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMeCommand creates the me command.
func NewMeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "me",
		Aliases: []string{"whoami"},
		Short:   "Show the authenticated user",
		Long:    "Display the user that owns the configured API key",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Users().Me(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			user := resp.Data

			return renderProperties(cmd.OutOrStdout(), resp, []property{
				{"ID", user.ID},
				{"Name", user.Attributes.Name},
				{"Email", user.Attributes.Email},
				{"Avatar", orNotAvailable(user.Attributes.AvatarURL)},
				{"Created", formatTime(user.Attributes.CreatedAt)},
			})
		},
	}
}
