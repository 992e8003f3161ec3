package task

import (
	"sort"
	"time"

	"github.com/koinonia/koinonia/pkg/season"
)

// Aggregation is the per-render split of the visible tasks: the current
// user's own tasks, everyone else's, and a UTC-day index over all of them.
// The index is built once per fetch and reused across every grid cell, so a
// render pass costs O(tasks) instead of O(days x tasks).
type Aggregation struct {
	OwnTasks  []Task
	PeerTasks []Task

	byDay        map[season.DayKey][]Task
	contributors []string
}

// Aggregate orders the visible tasks by descending creation time and splits
// them by ownership. Visibility filtering (own + accepted connections) has
// already happened at the store; this function only classifies.
func Aggregate(currentUserId string, visibleTasks []Task) *Aggregation {
	ordered := make([]Task, len(visibleTasks))
	copy(ordered, visibleTasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})

	aggregation := &Aggregation{
		OwnTasks:  make([]Task, 0, len(ordered)),
		PeerTasks: make([]Task, 0),
		byDay:     make(map[season.DayKey][]Task, len(ordered)),
	}

	seen := make(map[string]bool)
	for _, task := range ordered {
		key := season.DayKeyOf(task.Date)
		aggregation.byDay[key] = append(aggregation.byDay[key], task)

		if task.OwnerUid == currentUserId {
			aggregation.OwnTasks = append(aggregation.OwnTasks, task)
			continue
		}
		aggregation.PeerTasks = append(aggregation.PeerTasks, task)
		if !seen[task.OwnerUid] {
			seen[task.OwnerUid] = true
			aggregation.contributors = append(aggregation.contributors, task.OwnerUid)
		}
	}
	return aggregation
}

// TasksForDay returns the tasks whose stored instant falls on the given UTC
// calendar day, exactly. A task stored a second before midnight matches that
// day only, regardless of the host timezone.
func (a *Aggregation) TasksForDay(date time.Time) []Task {
	return a.byDay[season.DayKeyOf(date)]
}

// Contributors lists the distinct non-self task owners in first-appearance
// order within the newest-first task sequence. This is the order color
// assignment keys on.
func (a *Aggregation) Contributors() []string {
	return a.contributors
}
