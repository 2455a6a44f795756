package service

import (
	"strings"
	"time"

	"github.com/VinothPrinzz/socialgen-cli/pkg/api"
	"github.com/VinothPrinzz/socialgen-cli/pkg/auth"
	clierrors "github.com/VinothPrinzz/socialgen-cli/pkg/errors"
	"github.com/VinothPrinzz/socialgen-cli/pkg/formatter"
	"github.com/VinothPrinzz/socialgen-cli/pkg/prompter"
)

// Platforms the generator knows how to target
var Platforms = []string{"instagram", "twitter", "linkedin"}

// Suggested tags per form; "Other" free-text entry is added by the prompter
var (
	IndustryOptions = []string{"Technology", "Healthcare", "Finance", "Education", "Retail", "Travel", "Food"}
	ToneOptions     = []string{"Professional", "Casual", "Humorous", "Inspirational", "Educational"}
)

// GenerateInput is the collected form state. Submission stays blocked
// while Industry or Tone is empty.
type GenerateInput struct {
	Platform     string
	ContentTopic string
	Industry     []string
	Tone         []string
	Keywords     []string
}

// Validate enforces the form's submit-gating rules
func (in *GenerateInput) Validate() error {
	if !IsKnownPlatform(in.Platform) {
		return clierrors.ValidationError("platform", "must be one of instagram, twitter, linkedin")
	}
	if strings.TrimSpace(in.ContentTopic) == "" {
		return clierrors.ValidationError("topic", "cannot be empty")
	}
	if len(in.Industry) == 0 {
		return clierrors.ValidationError("industry", "select at least one tag")
	}
	if len(in.Tone) == 0 {
		return clierrors.ValidationError("tone", "select at least one tag")
	}
	return nil
}

// IsKnownPlatform reports whether p is a supported platform tag
func IsKnownPlatform(p string) bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// ParseKeywords splits a comma-separated keyword string, dropping blanks
func ParseKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}

type GenerateService struct {
	deps *Deps
}

// NewGenerateService creates a new generation service
func NewGenerateService(deps *Deps) *GenerateService {
	return &GenerateService{deps: deps}
}

// Run collects missing form input, submits the generation request, shows
// the draft, and offers queue/schedule/discard follow-ups.
func (s *GenerateService) Run(in GenerateInput) error {
	sess, err := s.deps.requireSession()
	if err != nil {
		return err
	}

	if err := s.fillMissing(&in); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}

	// Older sessions predate the login-time decode; fall back to
	// introspecting the stored token.
	userID := sess.UserID
	if userID == "" {
		userID, err = auth.UserIDFromToken(sess.Token)
		if err != nil {
			return clierrors.ValidationError("session", "token carries no user id, log in again")
		}
	}

	formatter.PrintInfo("Generating %s content...", in.Platform)
	resp, err := s.deps.API.Generate(userID, api.GenerateRequest{
		Platform:     in.Platform,
		ContentTopic: in.ContentTopic,
		Keywords:     in.Keywords,
		Industry:     in.Industry,
		Tone:         in.Tone,
	})
	if err != nil {
		return authFailed(err)
	}

	s.printDraft(resp)

	return s.review(resp.Post.ID)
}

func (s *GenerateService) fillMissing(in *GenerateInput) error {
	var err error

	if strings.TrimSpace(in.ContentTopic) == "" {
		in.ContentTopic, err = prompter.PromptString("Content topic: ")
		if err != nil {
			return err
		}
	}

	if len(in.Industry) == 0 {
		in.Industry, err = prompter.PromptTagSet("Industry", IndustryOptions)
		if err != nil {
			return err
		}
	}

	if len(in.Tone) == 0 {
		in.Tone, err = prompter.PromptTagSet("Tone", ToneOptions)
		if err != nil {
			return err
		}
	}

	if len(in.Keywords) == 0 {
		raw, err := prompter.PromptString("Keywords (comma-separated, optional): ")
		if err != nil {
			return err
		}
		in.Keywords = ParseKeywords(raw)
	}

	return nil
}

func (s *GenerateService) printDraft(resp *api.GenerateResponse) {
	formatter.PrintSuccess("✓ Draft generated")
	draft := map[string]interface{}{
		"Content":  resp.Post.Content,
		"Caption":  resp.Post.Caption,
		"Hashtags": resp.Post.Hashtags,
	}
	if resp.Post.Image != "" {
		draft["Image"] = resp.Post.Image
	}
	if resp.SuggestedPostingTime != "" {
		draft["Suggested time"] = resp.SuggestedPostingTime
	}
	formatter.PrintKeyValue(draft)
}

// review runs the follow-up action on a generated draft
func (s *GenerateService) review(postID string) error {
	choice, err := prompter.PromptSelect("What next?", []string{
		"Queue it",
		"Schedule it",
		"Discard draft",
	})
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		if err := s.deps.API.QueuePost(postID); err != nil {
			return authFailed(err)
		}
		formatter.PrintSuccess("✓ Post queued")
	case 1:
		raw, err := prompter.PromptString("Schedule for (YYYY-MM-DD HH:MM): ")
		if err != nil {
			return err
		}
		when, err := ParseScheduleTime(raw, time.Now())
		if err != nil {
			return err
		}
		if err := s.deps.API.SchedulePost(postID, api.ScheduleRequest{
			ScheduledTime: when,
			Schedule:      true,
		}); err != nil {
			return authFailed(err)
		}
		formatter.PrintSuccess("✓ Post scheduled for %s", when.Format("Jan 2, 3:04 PM"))
	case 2:
		if err := s.deps.API.DeletePost(postID); err != nil {
			return authFailed(err)
		}
		formatter.PrintInfo("Draft discarded")
	}

	return nil
}

// ParseScheduleTime parses a local "YYYY-MM-DD HH:MM" timestamp and rejects
// anything not strictly in the future, before any network call is made.
func ParseScheduleTime(raw string, now time.Time) (time.Time, error) {
	when, err := time.ParseInLocation("2006-01-02 15:04", strings.TrimSpace(raw), time.Local)
	if err != nil {
		return time.Time{}, clierrors.ValidationError("time", "use the format YYYY-MM-DD HH:MM")
	}
	if !when.After(now) {
		return time.Time{}, clierrors.ValidationError("time", "must be in the future")
	}
	return when, nil
}
