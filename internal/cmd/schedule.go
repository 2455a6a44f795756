package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/VinothPrinzz/socialgen-cli/pkg/service"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show scheduled posts grouped by day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewScheduleService(service.NewDeps()).List()
	},
}

var scheduleSetCmd = &cobra.Command{
	Use:   "set <post-id> <YYYY-MM-DD> <HH:MM>",
	Short: "Reschedule a post",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewScheduleService(service.NewDeps())
		return svc.Reschedule(args[0], strings.Join(args[1:], " "))
	},
}

func init() {
	scheduleCmd.AddCommand(scheduleSetCmd)
}
