package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VinothPrinzz/socialgen-cli/pkg/service"
)

var (
	createPlatform string
	createContent  string
	createCaption  string
	createHashtags string
	createTime     string
	createImage    string
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Create, edit, and delete posts",
}

var createPostCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a post manually",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewPostService(service.NewDeps())
		return svc.Create(service.CreateInput{
			Platform:      createPlatform,
			Content:       createContent,
			Caption:       createCaption,
			Hashtags:      createHashtags,
			ScheduledTime: createTime,
			Image:         createImage,
		})
	},
}

var editPostCmd = &cobra.Command{
	Use:   "edit <post-id>",
	Short: "Edit a queued post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService(service.NewDeps()).Edit(args[0])
	},
}

var deletePostCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService(service.NewDeps()).Delete(args[0])
	},
}

func init() {
	createPostCmd.Flags().StringVar(&createPlatform, "platform", "", "Target platform: instagram, twitter, linkedin")
	createPostCmd.Flags().StringVar(&createContent, "content", "", "Post content")
	createPostCmd.Flags().StringVar(&createCaption, "caption", "", "Caption")
	createPostCmd.Flags().StringVar(&createHashtags, "hashtags", "", "Hashtags")
	createPostCmd.Flags().StringVar(&createTime, "time", "", "Schedule time (YYYY-MM-DD HH:MM)")
	createPostCmd.Flags().StringVar(&createImage, "image", "", "Path to image file")
	_ = createPostCmd.MarkFlagRequired("platform")
	_ = createPostCmd.MarkFlagRequired("content")

	postsCmd.AddCommand(createPostCmd)
	postsCmd.AddCommand(editPostCmd)
	postsCmd.AddCommand(deletePostCmd)
}
