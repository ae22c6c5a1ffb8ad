// Package timewindow computes the date ranges behind the "today" and
// "this week" views and filters task collections against them. Everything
// here is pure; the caller supplies the clock.
package timewindow

import (
	"sort"
	"time"

	"tableflip.dev/agenda/pkg/task"
)

// Today returns the inclusive range covering the calendar day of now,
// in now's location.
func Today(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// ThisWeek returns the inclusive Monday-through-Sunday range containing
// now. Monday start is policy, not configuration.
func ThisWeek(now time.Time) (time.Time, time.Time) {
	dayStart, _ := Today(now)
	offset := int(now.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday belongs to the week that started six days earlier
	}
	start := dayStart.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}

// FilterByRange returns the tasks whose due date falls within [start, end]
// inclusive. Tasks with no parsable due date are excluded rather than
// failing the filter.
func FilterByRange(tasks []*task.Task, start, end time.Time) []*task.Task {
	out := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t == nil {
			continue
		}
		if t.DueDate.Between(start, end) {
			out = append(out, t)
		}
	}
	return out
}

// FilterCompleted returns only the completed tasks.
func FilterCompleted(tasks []*task.Task) []*task.Task {
	out := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t != nil && t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// FilterByProject returns the tasks referencing the given project id.
func FilterByProject(tasks []*task.Task, projectID string) []*task.Task {
	out := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t != nil && t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// SortByDueDate orders tasks chronologically in place. The sort is stable
// so ties keep their collection order. Dateless tasks sink to the end.
func SortByDueDate(tasks []*task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		left := tasks[i]
		right := tasks[j]
		if left == nil || right == nil {
			return left != nil
		}
		lt := left.DueDate.Time
		rt := right.DueDate.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return false
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			return lt.Before(rt)
		}
	})
}
