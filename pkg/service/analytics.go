package service

import (
	"fmt"
	"strings"

	"github.com/VinothPrinzz/socialgen-cli/pkg/analytics"
	"github.com/VinothPrinzz/socialgen-cli/pkg/formatter"
)

type AnalyticsService struct {
	deps *Deps
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(deps *Deps) *AnalyticsService {
	return &AnalyticsService{deps: deps}
}

// Show fetches the aggregate metrics and renders totals, the timeline,
// and the categorical breakdown. All derivation is local.
func (s *AnalyticsService) Show() error {
	if _, err := s.deps.requireSession(); err != nil {
		return err
	}

	posts, err := s.deps.API.Analytics()
	if err != nil {
		return authFailed(err)
	}

	formatter.PrintHeading("Analytics")
	formatter.PrintKeyValue(map[string]interface{}{
		"Total posts":        len(posts),
		"Total engagement":   analytics.TotalEngagement(posts),
		"Average engagement": fmt.Sprintf("%.2f", analytics.AverageEngagement(posts)),
	})

	if len(posts) == 0 {
		return nil
	}

	formatter.PrintHeading("\nEngagement breakdown")
	breakdown := analytics.Breakdown(posts)
	rows := make([][]string, 0, len(breakdown))
	max := 0
	for _, b := range breakdown {
		if b.Value > max {
			max = b.Value
		}
	}
	for _, b := range breakdown {
		rows = append(rows, []string{b.Name, fmt.Sprintf("%d", b.Value), bar(b.Value, max, 30)})
	}
	formatter.PrintTable([]string{"Metric", "Total", ""}, rows)

	formatter.PrintHeading("\nTimeline")
	timeline := analytics.Timeline(posts)
	rows = rows[:0]
	for _, p := range timeline {
		rows = append(rows, []string{
			p.Date,
			fmt.Sprintf("%d", p.Likes),
			fmt.Sprintf("%d", p.Shares),
			fmt.Sprintf("%d", p.Comments),
			fmt.Sprintf("%d", p.Impressions),
		})
	}
	formatter.PrintTable([]string{"Date", "Likes", "Shares", "Comments", "Impressions"}, rows)

	return nil
}

// TwitterMetrics renders the platform-specific follower/tweet rollup
func (s *AnalyticsService) TwitterMetrics() error {
	if _, err := s.deps.requireSession(); err != nil {
		return err
	}

	metrics, err := s.deps.API.TwitterMetrics()
	if err != nil {
		return authFailed(err)
	}

	summary := analytics.SummarizeTwitter(*metrics)

	formatter.PrintHeading("Twitter metrics")
	formatter.PrintKeyValue(map[string]interface{}{
		"Followers":          summary.Followers,
		"Following":          summary.Following,
		"Tweets":             summary.TweetCount,
		"Average engagement": fmt.Sprintf("%.1f", summary.AvgEngagement),
	})

	if len(summary.Engagement) == 0 {
		return nil
	}

	formatter.PrintHeading("\nRecent engagement")
	rows := make([][]string, 0, len(summary.Engagement))
	for _, p := range summary.Engagement {
		rows = append(rows, []string{
			p.Date,
			fmt.Sprintf("%d", p.Likes),
			fmt.Sprintf("%d", p.Retweets),
			fmt.Sprintf("%d", p.Replies),
		})
	}
	formatter.PrintTable([]string{"Date", "Likes", "Retweets", "Replies"}, rows)

	return nil
}

// bar renders a proportional text bar for the breakdown table
func bar(value, max, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := value * width / max
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}
