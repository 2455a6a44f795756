package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VinothPrinzz/socialgen-cli/pkg/service"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage linked social accounts",
}

var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List connected accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAccountsService(service.NewDeps()).List()
	},
}

var accountsCheckCmd = &cobra.Command{
	Use:       "check <platform>",
	Short:     "Check whether a platform is connected",
	ValidArgs: service.Platforms,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAccountsService(service.NewDeps()).Check(args[0])
	},
}

var accountsDisconnectCmd = &cobra.Command{
	Use:       "disconnect <platform>",
	Short:     "Disconnect a platform",
	ValidArgs: service.Platforms,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAccountsService(service.NewDeps()).Disconnect(args[0])
	},
}

func init() {
	accountsCmd.AddCommand(accountsListCmd)
	accountsCmd.AddCommand(accountsCheckCmd)
	accountsCmd.AddCommand(accountsDisconnectCmd)
}
