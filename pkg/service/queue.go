package service

import (
	"fmt"
	"sync"

	"github.com/VinothPrinzz/socialgen-cli/pkg/api"
	"github.com/VinothPrinzz/socialgen-cli/pkg/formatter"
	"github.com/VinothPrinzz/socialgen-cli/pkg/post"
	"github.com/VinothPrinzz/socialgen-cli/pkg/prompter"
)

type QueueService struct {
	deps *Deps
}

// NewQueueService creates a new queue service
func NewQueueService(deps *Deps) *QueueService {
	return &QueueService{deps: deps}
}

// List renders the queued drafts alongside the profile header. Profile and
// posts are fetched concurrently and joined before anything renders.
func (s *QueueService) List() error {
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
		posts, postsErr = s.deps.API.QueuedPosts()
	}()
	wg.Wait()

	if userErr != nil {
		return authFailed(userErr)
	}
	if postsErr != nil {
		return authFailed(postsErr)
	}

	formatter.PrintHeading("%s's queue", user.Username)

	if len(posts) == 0 {
		formatter.PrintInfo("No queued posts")
		return nil
	}

	printCards(posts)
	return nil
}

// Delete confirms, deletes, and reports. The rendered list only loses the
// post when the server confirmed the delete; on failure the queue is shown
// unchanged.
func (s *QueueService) Delete(postID string) error {
	if _, err := s.deps.requireSession(); err != nil {
		return err
	}

	posts, err := s.deps.API.QueuedPosts()
	if err != nil {
		return authFailed(err)
	}

	confirm, err := prompter.PromptConfirm(fmt.Sprintf("Delete post %s?", postID))
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := s.deps.API.DeletePost(postID); err != nil {
		formatter.PrintError("Failed to delete post: %v", err)
		printCards(posts)
		return authFailed(err)
	}

	posts = post.RemoveByID(posts, postID)
	formatter.PrintSuccess("✓ Post deleted")
	printCards(posts)
	return nil
}

// printCards renders a list of posts through the platform card renderer
func printCards(posts []api.Post) {
	headers := []string{"ID", "Platform", "State", "Scheduled", "Text"}
	rows := make([][]string, 0, len(posts))

	for _, p := range posts {
		card := post.Render(p)
		text := card.Title
		if text == "" {
			text = card.Body
		}
		rows = append(rows, []string{
			p.ID,
			card.Platform,
			string(card.State),
			card.TimeLabel,
			truncate(text, 60),
		})
	}

	formatter.PrintTable(headers, rows)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
