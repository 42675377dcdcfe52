package planning

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestDateConflicts(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		deps     []Dependency
		want     int
		wantGaps []int
	}{
		{
			name:     "dependency ends same day as task starts",
			task:     Task{ID: "t1", StartDate: date(2025, 6, 10)},
			deps:     []Dependency{{ID: "d1", EndDate: date(2025, 6, 10)}},
			want:     1,
			wantGaps: []int{0},
		},
		{
			name:     "dependency ends after task starts",
			task:     Task{ID: "t1", StartDate: date(2025, 6, 10)},
			deps:     []Dependency{{ID: "d1", EndDate: date(2025, 6, 15)}},
			want:     1,
			wantGaps: []int{-5},
		},
		{
			name: "dependency ends before task starts",
			task: Task{ID: "t1", StartDate: date(2025, 6, 20)},
			deps: []Dependency{{ID: "d1", EndDate: date(2025, 6, 10)}},
			want: 0,
		},
		{
			name: "task without start date cannot conflict",
			task: Task{ID: "t1"},
			deps: []Dependency{{ID: "d1", EndDate: date(2025, 6, 15)}},
			want: 0,
		},
		{
			name: "dependency without end date is skipped",
			task: Task{ID: "t1", StartDate: date(2025, 6, 10)},
			deps: []Dependency{{ID: "d1"}},
			want: 0,
		},
		{
			name: "time of day is ignored",
			task: Task{ID: "t1", StartDate: timePtr(time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC))},
			deps: []Dependency{
				{ID: "d1", EndDate: timePtr(time.Date(2025, 6, 10, 1, 0, 0, 0, time.UTC))},
			},
			want:     1,
			wantGaps: []int{0},
		},
		{
			name: "mixed dependencies filter to conflicts only",
			task: Task{ID: "t1", StartDate: date(2025, 6, 10)},
			deps: []Dependency{
				{ID: "before", EndDate: date(2025, 6, 1)},
				{ID: "same", EndDate: date(2025, 6, 10)},
				{ID: "after", EndDate: date(2025, 6, 12)},
				{ID: "open"},
			},
			want:     2,
			wantGaps: []int{0, -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateConflicts(tt.task, tt.deps)
			if len(got) != tt.want {
				t.Fatalf("DateConflicts() returned %d conflicts, want %d: %+v", len(got), tt.want, got)
			}
			for i, gap := range tt.wantGaps {
				if got[i].GapDays != gap {
					t.Errorf("conflict %d: GapDays = %d, want %d", i, got[i].GapDays, gap)
				}
			}
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
