package post

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VinothPrinzz/socialgen-cli/pkg/api"
)

func at(t time.Time) *time.Time { return &t }

func TestGroupByDay_AscendingOrderPreserved(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)

	posts := []api.Post{
		{ID: "1", ScheduledTime: at(now.Add(2 * time.Hour))},
		{ID: "2", ScheduledTime: at(now.Add(5 * time.Hour))},
		{ID: "3", ScheduledTime: at(now.AddDate(0, 0, 1))},
		{ID: "4", ScheduledTime: at(now.AddDate(0, 0, 3))},
	}

	groups := GroupByDay(posts, now)

	require.Len(t, groups, 3)
	for i := 1; i < len(groups); i++ {
		assert.True(t, groups[i-1].Date.Before(groups[i].Date),
			"groups out of order at %d", i)
	}

	// every post lands in exactly one bucket
	total := 0
	for _, g := range groups {
		total += len(g.Posts)
	}
	assert.Equal(t, len(posts), total)
}

func TestGroupByDay_Labels(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)

	posts := []api.Post{
		{ID: "today", ScheduledTime: at(now.Add(time.Hour))},
		{ID: "tomorrow", ScheduledTime: at(now.AddDate(0, 0, 1))},
		{ID: "friday", ScheduledTime: at(time.Date(2026, 9, 4, 9, 0, 0, 0, time.Local))},
	}

	groups := GroupByDay(posts, now)

	require.Len(t, groups, 3)
	assert.Equal(t, "Today", groups[0].Label)
	assert.Equal(t, "Tomorrow", groups[1].Label)
	assert.Equal(t, "Friday, September 04", groups[2].Label)
}

func TestGroupByDay_SkipsUnscheduled(t *testing.T) {
	now := time.Now()
	posts := []api.Post{
		{ID: "draft"},
		{ID: "set", ScheduledTime: at(now.Add(time.Hour))},
	}

	groups := GroupByDay(posts, now)

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Posts, 1)
	assert.Equal(t, "set", groups[0].Posts[0].ID)
}

func TestGroupByDay_Empty(t *testing.T) {
	assert.Empty(t, GroupByDay(nil, time.Now()))
}

func TestSortBySchedule(t *testing.T) {
	now := time.Now()
	posts := []api.Post{
		{ID: "late", ScheduledTime: at(now.Add(48 * time.Hour))},
		{ID: "none"},
		{ID: "soon", ScheduledTime: at(now.Add(time.Hour))},
	}

	SortBySchedule(posts)

	assert.Equal(t, "none", posts[0].ID)
	assert.Equal(t, "soon", posts[1].ID)
	assert.Equal(t, "late", posts[2].ID)
}
