package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VinothPrinzz/socialgen-cli/pkg/service"
)

var (
	genTopic    string
	genIndustry []string
	genTone     []string
	genKeywords []string
)

var generateCmd = &cobra.Command{
	Use:       "generate <instagram|twitter|linkedin>",
	Short:     "Generate a post draft with AI",
	Long:      "Generate platform-specific post content. Missing inputs are collected interactively; the resulting draft can be queued, scheduled, or discarded.",
	ValidArgs: service.Platforms,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewGenerateService(service.NewDeps())
		return svc.Run(service.GenerateInput{
			Platform:     args[0],
			ContentTopic: genTopic,
			Industry:     genIndustry,
			Tone:         genTone,
			Keywords:     genKeywords,
		})
	},
}

func init() {
	generateCmd.Flags().StringVar(&genTopic, "topic", "", "Content topic")
	generateCmd.Flags().StringSliceVar(&genIndustry, "industry", nil, "Industry tags (repeatable)")
	generateCmd.Flags().StringSliceVar(&genTone, "tone", nil, "Tone tags (repeatable)")
	generateCmd.Flags().StringSliceVar(&genKeywords, "keywords", nil, "Keywords (repeatable)")
}
