package post

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VinothPrinzz/socialgen-cli/pkg/api"
)

func TestRender_InstagramNoCaption(t *testing.T) {
	// Missing caption falls back to content, never a panic
	card := Render(api.Post{
		Platform: []string{"instagram"},
		Content:  "launch day!",
	})

	assert.Equal(t, "instagram", card.Platform)
	assert.Equal(t, LayoutImage, card.Layout)
	assert.Equal(t, "launch day!", card.Title)
}

func TestRender_LinkedinTextForward(t *testing.T) {
	card := Render(api.Post{
		Platform: []string{"linkedin"},
		Content:  "Thoughts on hiring.",
		Caption:  "Hiring",
		Hashtags: "#hiring",
	})

	assert.Equal(t, LayoutText, card.Layout)
	assert.Equal(t, "Thoughts on hiring.", card.Body)
	assert.Equal(t, "Hiring", card.Title)
	assert.Equal(t, "#hiring", card.Hashtags)
}

func TestRender_UnknownPlatformFallsBack(t *testing.T) {
	tests := []struct {
		name string
		post api.Post
		body string
	}{
		{"unknown tag", api.Post{Platform: []string{"mastodon"}, Content: "hi"}, "hi"},
		{"missing platform", api.Post{Content: "hi"}, "hi"},
		{"caption only", api.Post{Caption: "cap"}, "cap"},
		{"nothing at all", api.Post{}, "(no content)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := Render(tt.post)
			assert.Equal(t, LayoutText, card.Layout)
			assert.Equal(t, tt.body, card.Body)
		})
	}
}

func TestRender_CarriesStateAndTimeLabel(t *testing.T) {
	card := Render(api.Post{Platform: []string{"twitter"}, Content: "x"})
	assert.Equal(t, StateDraft, card.State)
	assert.Equal(t, "Not scheduled", card.TimeLabel)
}
