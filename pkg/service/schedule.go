package service

import (
	"sync"
	"time"

	"github.com/VinothPrinzz/socialgen-cli/pkg/api"
	"github.com/VinothPrinzz/socialgen-cli/pkg/formatter"
	"github.com/VinothPrinzz/socialgen-cli/pkg/post"
)

type ScheduleService struct {
	deps *Deps
}

// NewScheduleService creates a new schedule service
func NewScheduleService(deps *Deps) *ScheduleService {
	return &ScheduleService{deps: deps}
}

// List renders scheduled posts grouped by calendar day, ascending
func (s *ScheduleService) List() error {
	if _, err := s.deps.requireSession(); err != nil {
		return err
	}

	var (
		user     *api.User
		posts    []api.Post
		userErr  error
		postsErr error
		wg       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		user, userErr = s.deps.API.CurrentUser()
	}()
	go func() {
		defer wg.Done()
		posts, postsErr = s.deps.API.ScheduledPosts()
	}()
	wg.Wait()

	if userErr != nil {
		return authFailed(userErr)
	}
	if postsErr != nil {
		return authFailed(postsErr)
	}

	formatter.PrintHeading("%s's schedule", user.Username)

	post.SortBySchedule(posts)
	groups := post.GroupByDay(posts, time.Now())

	if len(groups) == 0 {
		formatter.PrintInfo("No scheduled posts")
		return nil
	}

	for _, g := range groups {
		formatter.PrintHeading("\n%s", g.Label)
		rows := make([][]string, 0, len(g.Posts))
		for _, p := range g.Posts {
			card := post.Render(p)
			text := card.Title
			if text == "" {
				text = card.Body
			}
			rows = append(rows, []string{
				post.FormatClock(*p.ScheduledTime),
				p.ID,
				card.Platform,
				truncate(text, 60),
			})
		}
		formatter.PrintTable([]string{"Time", "ID", "Platform", "Text"}, rows)
	}

	return nil
}

// Reschedule validates the new timestamp client-side, then updates the
// post's scheduled time. A past timestamp never reaches the network.
func (s *ScheduleService) Reschedule(postID, raw string) error {
	if _, err := s.deps.requireSession(); err != nil {
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
		formatter.PrintError("Failed to reschedule post: %v", err)
		return authFailed(err)
	}

	formatter.PrintSuccess("✓ Post rescheduled for %s", when.Format("Jan 2, 3:04 PM"))
	return nil
}
