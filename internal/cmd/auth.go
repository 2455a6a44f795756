package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VinothPrinzz/socialgen-cli/pkg/service"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  "Manage authentication with the Socialgen backend",
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to Socialgen",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService(service.NewDeps()).Login()
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new Socialgen account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService(service.NewDeps()).Signup()
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from Socialgen",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService(service.NewDeps()).Logout()
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Display current authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService(service.NewDeps()).WhoAmI()
	},
}

func init() {
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(signupCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)
}
