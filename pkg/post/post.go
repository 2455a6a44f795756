// Package post is the view-model shared by the queue, schedule, and edit
// screens: lifecycle state derivation, platform card rendering, and the
// group-by-day projection of the schedule.
package post

import (
	"strings"
	"time"

	"github.com/VinothPrinzz/socialgen-cli/pkg/api"
)

// State is a post's lifecycle state, derived from its fields. A post is in
// exactly one state at a time; the precedence below keeps the derivation
// unambiguous when fields overlap (a failed post may still carry its
// scheduled time).
type State string

const (
	StateDraft     State = "draft"
	StateScheduled State = "scheduled"
	StatePosted    State = "posted"
	StateFailed    State = "failed"
)

// StateOf derives the lifecycle state of a post
func StateOf(p api.Post) State {
	switch {
	case p.PostError != "":
		return StateFailed
	case p.Posted:
		return StatePosted
	case p.ScheduledTime != nil:
		return StateScheduled
	default:
		return StateDraft
	}
}

// PrimaryPlatform returns the post's primary platform: the first element of
// the platform list, lowercased. Empty when the list is missing or empty.
func PrimaryPlatform(p api.Post) string {
	if len(p.Platform) == 0 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(p.Platform[0]))
}

// FormatScheduled renders a scheduled time for display, "Jan 5, 2:30 PM"
// style. No timezone conversion beyond what the runtime provides.
func FormatScheduled(t *time.Time) string {
	if t == nil {
		return "Not scheduled"
	}
	return t.Format("Jan 2, 3:04 PM")
}

// FormatClock renders just the time-of-day portion, "2:30 pm" style
func FormatClock(t time.Time) string {
	return strings.ToLower(t.Format("3:04 PM"))
}

// RemoveByID returns the list without the post of the given id. The input
// slice is left untouched so a failed mutation can re-render it as-is.
func RemoveByID(posts []api.Post, id string) []api.Post {
	result := make([]api.Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			result = append(result, p)
		}
	}
	return result
}
