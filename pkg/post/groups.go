package post

import (
	"sort"
	"time"

	"github.com/VinothPrinzz/socialgen-cli/pkg/api"
)

// DayGroup is one calendar day of the schedule view
type DayGroup struct {
	Date  time.Time // midnight, local
	Label string
	Posts []api.Post
}

// SortBySchedule orders posts ascending by scheduled time. Posts without a
// scheduled time sort first so drafts surface at the top of mixed lists.
func SortBySchedule(posts []api.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i].ScheduledTime, posts[j].ScheduledTime
		if a == nil {
			return b != nil
		}
		if b == nil {
			return false
		}
		return a.Before(*b)
	})
}

// GroupByDay buckets posts by the local calendar date of their scheduled
// time. Input is expected pre-sorted ascending; groups come out in the same
// order, each post in exactly one bucket. Posts without a scheduled time
// are skipped — they belong to the queue view, not the schedule.
func GroupByDay(posts []api.Post, now time.Time) []DayGroup {
	var groups []DayGroup
	index := make(map[time.Time]int)

	for _, p := range posts {
		if p.ScheduledTime == nil {
			continue
		}
		day := midnight(*p.ScheduledTime)

		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DayGroup{
				Date:  day,
				Label: dayLabel(day, now),
			})
		}
		groups[i].Posts = append(groups[i].Posts, p)
	}

	return groups
}

// dayLabel renders a group header: Today/Tomorrow when the date matches,
// otherwise the weekday/month/day string.
func dayLabel(day time.Time, now time.Time) string {
	today := midnight(now)
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow"
	default:
		return day.Format("Monday, January 02")
	}
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
