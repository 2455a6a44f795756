package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/VinothPrinzz/socialgen-cli/pkg/config"
	clierrors "github.com/VinothPrinzz/socialgen-cli/pkg/errors"
	"github.com/VinothPrinzz/socialgen-cli/pkg/logger"
	"github.com/VinothPrinzz/socialgen-cli/pkg/output"
)

var (
	verbose    bool
	configPath string
	outputFmt  string
)

var rootCmd = &cobra.Command{
	Use:   "socialgen",
	Short: "Socialgen - AI social media content dashboard",
	Long: `Socialgen is a command-line dashboard for composing, scheduling,
and analyzing social media posts across Instagram, Twitter, and
LinkedIn. Content generation, scheduling, and analytics live in the
backend; this client renders state and drives it over REST.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := config.Init(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(verbose)

		if !output.ValidateOutputFormat(outputFmt) {
			fmt.Fprintf(os.Stderr, "Error: invalid output format %q\n", outputFmt)
			os.Exit(1)
		}
		config.SetString("output.format", outputFmt)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, clierrors.FormatError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/socialgen/config.toml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "output", "text", "Output format: text, json, table")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(postsCmd)
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(twitterCmd)
	rootCmd.AddCommand(accountsCmd)
	rootCmd.AddCommand(versionCmd)
}
