package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/clanops/clan-gateway/internal/core/domain"
	"github.com/clanops/clan-gateway/pkg/bungieurl"
)

var version = "dev"

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "clanctl",
		Short:        "Helpers for bungie.net clan links and OAuth",
		SilenceUsage: true,
	}
	root.AddCommand(
		newAuthorizeURLCmd(),
		newProfileLinkCmd(),
		newClanLinkCmd(),
		newVersionCmd(),
	)
	return root
}

func newAuthorizeURLCmd() *cobra.Command {
	var clientID, state string
	cmd := &cobra.Command{
		Use:   "authorize-url",
		Short: "Print the bungie.net OAuth2 authorization URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if clientID == "" {
				clientID = os.Getenv("BUNGIE_CLIENT_ID")
			}
			if clientID == "" {
				return fmt.Errorf("--client-id or BUNGIE_CLIENT_ID is required")
			}
			if state == "" {
				state = bungieurl.NewState()
			}
			fmt.Fprintln(cmd.OutOrStdout(), bungieurl.AuthorizeURL(clientID, state))
			return nil
		},
	}
	cmd.Flags().StringVar(&clientID, "client-id", "", "registered application id")
	cmd.Flags().StringVar(&state, "state", "", "state parameter (random when empty)")
	return cmd
}

func newProfileLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile-link <membership-type> <membership-id>",
		Short: "Print the public profile URL of a membership",
		Long:  "The membership type may be a name (steam, xbox, psn...) or its number.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid membership id %q", args[1])
			}
			ident := domain.Identity{ID: id, Type: domain.MembershipTypeFromString(args[0])}
			fmt.Fprintln(cmd.OutOrStdout(), ident.Link())
			return nil
		},
	}
}

func newClanLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clan-link <group-id>",
		Short: "Print the clan page URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid group id %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), bungieurl.ClanLink(id))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the clanctl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
