// Package planning holds pure scheduling checks shared by task tooling.
package planning

import (
	"time"
)

// Task is the dependent task being scheduled.
type Task struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	StartDate *time.Time `json:"start_date"`
}

// Dependency is a task the scheduled task depends on.
type Dependency struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	EndDate *time.Time `json:"end_date"`
}

// Conflict reports a dependency that ends on or after the task starts.
// GapDays is floor((start - end) / day): zero for same-day adjacency,
// negative for a true overlap. Positive gaps are never reported.
type Conflict struct {
	Dependency Dependency `json:"dependency"`
	GapDays    int        `json:"gap_days"`
}

// DateConflicts returns every dependency whose end date is on or after the
// task's start date, comparing calendar dates only (time of day ignored).
// A task without a start date cannot conflict; a dependency without an end
// date is skipped. Pure function, safe to call concurrently.
func DateConflicts(task Task, deps []Dependency) []Conflict {
	if task.StartDate == nil {
		return []Conflict{}
	}
	start := truncateDay(*task.StartDate)

	conflicts := []Conflict{}
	for _, dep := range deps {
		if dep.EndDate == nil {
			continue
		}
		end := truncateDay(*dep.EndDate)
		gap := int(start.Sub(end).Hours() / 24)
		if gap <= 0 {
			conflicts = append(conflicts, Conflict{Dependency: dep, GapDays: gap})
		}
	}
	return conflicts
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
