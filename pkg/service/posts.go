package service

import (
	"strings"
	"time"

	"github.com/VinothPrinzz/socialgen-cli/pkg/api"
	clierrors "github.com/VinothPrinzz/socialgen-cli/pkg/errors"
	"github.com/VinothPrinzz/socialgen-cli/pkg/formatter"
	"github.com/VinothPrinzz/socialgen-cli/pkg/post"
	"github.com/VinothPrinzz/socialgen-cli/pkg/prompter"
)

type PostService struct {
	deps *Deps
}

// NewPostService creates a new post service
func NewPostService(deps *Deps) *PostService {
	return &PostService{deps: deps}
}

// CreateInput is the manual-create form
type CreateInput struct {
	Platform      string
	Content       string
	Caption       string
	Hashtags      string
	ScheduledTime string
	Image         string
}

// Create submits a manual post; the image travels as a multipart part
func (s *PostService) Create(in CreateInput) error {
	if _, err := s.deps.requireSession(); err != nil {
		return err
	}

	if !IsKnownPlatform(in.Platform) {
		return clierrors.ValidationError("platform", "must be one of instagram, twitter, linkedin")
	}
	if strings.TrimSpace(in.Content) == "" {
		return clierrors.ValidationError("content", "cannot be empty")
	}

	scheduledTime := ""
	if in.ScheduledTime != "" {
		when, err := ParseScheduleTime(in.ScheduledTime, time.Now())
		if err != nil {
			return err
		}
		scheduledTime = when.Format(time.RFC3339)
	}

	created, err := s.deps.API.CreatePost(api.CreatePostRequest{
		Platform:      in.Platform,
		Content:       in.Content,
		Caption:       in.Caption,
		Hashtags:      in.Hashtags,
		ScheduledTime: scheduledTime,
		Image:         in.Image,
	})
	if err != nil {
		return authFailed(err)
	}

	formatter.PrintSuccess("✓ Post created")
	card := post.Render(*created)
	formatter.PrintKeyValue(map[string]interface{}{
		"ID":        created.ID,
		"Platform":  card.Platform,
		"State":     string(card.State),
		"Scheduled": card.TimeLabel,
	})
	return nil
}

// Edit fetches a queued post, prompts per field (empty keeps the current
// value), and saves.
func (s *PostService) Edit(postID string) error {
	if _, err := s.deps.requireSession(); err != nil {
		return err
	}

	current, err := s.deps.API.GetQueuedPost(postID)
	if err != nil {
		return authFailed(err)
	}

	formatter.PrintInfo("Editing post %s (empty input keeps the current value)", postID)

	content, err := prompter.PromptString("Content [" + truncate(current.Content, 40) + "]: ")
	if err != nil {
		return err
	}
	if content == "" {
		content = current.Content
	}

	caption, err := prompter.PromptString("Caption [" + truncate(current.Caption, 40) + "]: ")
	if err != nil {
		return err
	}
	if caption == "" {
		caption = current.Caption
	}

	hashtags, err := prompter.PromptString("Hashtags [" + current.Hashtags + "]: ")
	if err != nil {
		return err
	}
	if hashtags == "" {
		hashtags = current.Hashtags
	}

	req := api.UpdatePostRequest{
		Content:  content,
		Caption:  caption,
		Hashtags: hashtags,
	}

	newTime, err := prompter.PromptString("Schedule time (YYYY-MM-DD HH:MM, empty keeps current): ")
	if err != nil {
		return err
	}
	if newTime != "" {
		when, err := ParseScheduleTime(newTime, time.Now())
		if err != nil {
			return err
		}
		req.ScheduledTime = when.Format(time.RFC3339)
	} else if current.ScheduledTime != nil {
		req.ScheduledTime = current.ScheduledTime.Format(time.RFC3339)
	}

	if err := s.deps.API.UpdateQueuedPost(postID, req); err != nil {
		formatter.PrintError("Failed to update post: %v", err)
		return authFailed(err)
	}

	formatter.PrintSuccess("✓ Post updated")
	return nil
}

// Delete deletes a post in any pre-posted state, after confirmation
func (s *PostService) Delete(postID string) error {
	if _, err := s.deps.requireSession(); err != nil {
		return err
	}

	confirm, err := prompter.PromptConfirm("Delete post " + postID + "?")
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := s.deps.API.DeletePost(postID); err != nil {
		formatter.PrintError("Failed to delete post: %v", err)
		return authFailed(err)
	}

	formatter.PrintSuccess("✓ Post deleted")
	return nil
}
