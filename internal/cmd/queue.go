package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VinothPrinzz/socialgen-cli/pkg/service"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show queued posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewQueueService(service.NewDeps()).List()
	},
}

var queueDeleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete a queued post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewQueueService(service.NewDeps()).Delete(args[0])
	},
}

func init() {
	queueCmd.AddCommand(queueDeleteCmd)
}
