package post

import (
	"github.com/VinothPrinzz/socialgen-cli/pkg/api"
)

// Card is the normalized display projection of a post: a per-platform
// layout plus a caption/body text and a scheduled time label.
type Card struct {
	Platform  string
	Layout    Layout
	Title     string
	Body      string
	Hashtags  string
	ImageURL  string
	TimeLabel string
	State     State
}

// Layout selects which face of the card leads
type Layout string

const (
	// LayoutImage leads with the image, caption underneath
	LayoutImage Layout = "image"
	// LayoutText leads with the body text
	LayoutText Layout = "text"
)

type renderFunc func(api.Post) Card

// One renderer per platform tag; anything unknown falls back to the
// generic text layout.
var renderers = map[string]renderFunc{
	"instagram": renderImageForward,
	"twitter":   renderImageForward,
	"linkedin":  renderTextForward,
}

// Render maps a post to its display card by primary platform
func Render(p api.Post) Card {
	platform := PrimaryPlatform(p)
	render, ok := renderers[platform]
	if !ok {
		render = renderGeneric
	}

	card := render(p)
	card.Platform = platform
	card.TimeLabel = FormatScheduled(p.ScheduledTime)
	card.State = StateOf(p)
	return card
}

// renderImageForward is the Instagram/Twitter layout: image first, caption
// as the title. A missing caption falls back to the content text.
func renderImageForward(p api.Post) Card {
	title := p.Caption
	if title == "" {
		title = p.Content
	}
	return Card{
		Layout:   LayoutImage,
		Title:    title,
		Body:     p.Content,
		Hashtags: p.Hashtags,
		ImageURL: p.Image,
	}
}

// renderTextForward is the LinkedIn layout: body text leads
func renderTextForward(p api.Post) Card {
	return Card{
		Layout:   LayoutText,
		Title:    p.Caption,
		Body:     p.Content,
		Hashtags: p.Hashtags,
		ImageURL: p.Image,
	}
}

// renderGeneric shows content text, or a placeholder when there is none
func renderGeneric(p api.Post) Card {
	body := p.Content
	if body == "" {
		body = p.Caption
	}
	if body == "" {
		body = "(no content)"
	}
	return Card{
		Layout:   LayoutText,
		Body:     body,
		Hashtags: p.Hashtags,
	}
}
