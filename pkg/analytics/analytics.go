// Package analytics derives chart data from already-fetched metrics. All of
// it is pure: no pagination, no incremental loading, no network.
package analytics

import (
	"github.com/VinothPrinzz/socialgen-cli/pkg/api"
)

// TotalEngagement sums likes+shares+comments across posts
func TotalEngagement(posts []api.PostMetrics) int {
	total := 0
	for _, p := range posts {
		total += p.Likes + p.Shares + p.Comments
	}
	return total
}

// AverageEngagement is total engagement over post count; exactly 0 for an
// empty list.
func AverageEngagement(posts []api.PostMetrics) float64 {
	if len(posts) == 0 {
		return 0
	}
	return float64(TotalEngagement(posts)) / float64(len(posts))
}

// TimelinePoint is one post's metrics keyed by its creation date
type TimelinePoint struct {
	Date        string
	Likes       int
	Shares      int
	Comments    int
	Impressions int
}

// Timeline maps posts to a series keyed by creation date
func Timeline(posts []api.PostMetrics) []TimelinePoint {
	points := make([]TimelinePoint, 0, len(posts))
	for _, p := range posts {
		date := ""
		if p.CreatedAt != nil {
			date = p.CreatedAt.Format("1/2/2006")
		}
		points = append(points, TimelinePoint{
			Date:        date,
			Likes:       p.Likes,
			Shares:      p.Shares,
			Comments:    p.Comments,
			Impressions: p.Impressions,
		})
	}
	return points
}

// BreakdownSlice is one category of the engagement breakdown
type BreakdownSlice struct {
	Name  string
	Value int
}

// Breakdown totals each metric category across posts, in a fixed order
func Breakdown(posts []api.PostMetrics) []BreakdownSlice {
	var likes, shares, comments, impressions int
	for _, p := range posts {
		likes += p.Likes
		shares += p.Shares
		comments += p.Comments
		impressions += p.Impressions
	}
	return []BreakdownSlice{
		{Name: "Likes", Value: likes},
		{Name: "Shares", Value: shares},
		{Name: "Comments", Value: comments},
		{Name: "Impressions", Value: impressions},
	}
}

// TwitterSummary is the rollup of the platform-specific metrics feed
type TwitterSummary struct {
	Followers     int
	Following     int
	TweetCount    int
	AvgEngagement float64
	Engagement    []TwitterEngagementPoint
}

// TwitterEngagementPoint is one tweet's engagement keyed by creation date
type TwitterEngagementPoint struct {
	Date     string
	Likes    int
	Retweets int
	Replies  int
}

// SummarizeTwitter rolls the raw metrics response up for display
func SummarizeTwitter(m api.TwitterMetricsResponse) TwitterSummary {
	summary := TwitterSummary{
		Followers:  m.User.PublicMetrics.FollowersCount,
		Following:  m.User.PublicMetrics.FollowingCount,
		TweetCount: len(m.Tweets),
	}

	total := 0
	for _, t := range m.Tweets {
		pm := t.PublicMetrics
		total += pm.LikeCount + pm.RetweetCount + pm.ReplyCount
		summary.Engagement = append(summary.Engagement, TwitterEngagementPoint{
			Date:     t.CreatedAt.Format("1/2/2006"),
			Likes:    pm.LikeCount,
			Retweets: pm.RetweetCount,
			Replies:  pm.ReplyCount,
		})
	}
	if len(m.Tweets) > 0 {
		summary.AvgEngagement = float64(total) / float64(len(m.Tweets))
	}

	return summary
}
