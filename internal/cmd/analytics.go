package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VinothPrinzz/socialgen-cli/pkg/service"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show engagement analytics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAnalyticsService(service.NewDeps()).Show()
	},
}

var twitterCmd = &cobra.Command{
	Use:   "twitter",
	Short: "Twitter-specific commands",
}

var twitterMetricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show Twitter follower and tweet metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAnalyticsService(service.NewDeps()).TwitterMetrics()
	},
}

func init() {
	twitterCmd.AddCommand(twitterMetricsCmd)
}
