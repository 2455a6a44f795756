package post

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/VinothPrinzz/socialgen-cli/pkg/api"
)

func TestStateOf(t *testing.T) {
	at := time.Date(2026, 9, 5, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name string
		post api.Post
		want State
	}{
		{"no fields set", api.Post{}, StateDraft},
		{"scheduled time set", api.Post{ScheduledTime: &at}, StateScheduled},
		{"posted", api.Post{ScheduledTime: &at, Posted: true}, StatePosted},
		{"failed", api.Post{ScheduledTime: &at, PostError: "rate limited"}, StateFailed},
		{"failed wins over posted", api.Post{Posted: true, PostError: "x"}, StateFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StateOf(tt.post))
		})
	}
}

func TestPrimaryPlatform(t *testing.T) {
	tests := []struct {
		name     string
		platform []string
		want     string
	}{
		{"single element", []string{"instagram"}, "instagram"},
		{"multi element takes first", []string{"Twitter", "linkedin"}, "twitter"},
		{"empty list", []string{}, ""},
		{"nil list", nil, ""},
		{"whitespace trimmed", []string{"  LinkedIn "}, "linkedin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrimaryPlatform(api.Post{Platform: tt.platform}))
		})
	}
}

func TestFormatScheduled(t *testing.T) {
	at := time.Date(2026, 1, 5, 14, 30, 0, 0, time.Local)
	assert.Equal(t, "Jan 5, 2:30 PM", FormatScheduled(&at))
	assert.Equal(t, "Not scheduled", FormatScheduled(nil))
}

func TestFormatClock(t *testing.T) {
	at := time.Date(2026, 1, 5, 14, 30, 0, 0, time.Local)
	assert.Equal(t, "2:30 pm", FormatClock(at))
}

func TestRemoveByID(t *testing.T) {
	posts := []api.Post{{ID: "A"}, {ID: "B"}, {ID: "C"}}

	got := RemoveByID(posts, "B")

	ids := func(ps []api.Post) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = p.ID
		}
		return out
	}

	assert.Equal(t, []string{"A", "C"}, ids(got))
	// input list stays intact so a failed delete re-renders unchanged
	assert.Equal(t, []string{"A", "B", "C"}, ids(posts))
}

func TestRemoveByID_MissingID(t *testing.T) {
	posts := []api.Post{{ID: "A"}, {ID: "B"}}
	got := RemoveByID(posts, "nope")
	assert.Len(t, got, 2)
}
