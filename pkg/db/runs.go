package db

import (
	"fmt"
	"sort"
)

// SortRunsNewestFirst orders runs by creation time, newest first.
// Runs created at the same instant are ordered by week start, latest first.
func SortRunsNewestFirst(runs []ScheduleRun) {
	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].WeekStart > runs[j].WeekStart
		}
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
}

// FindRun returns the run with the given ID
func FindRun(runs []ScheduleRun, runID string) (*ScheduleRun, error) {
	for i := range runs {
		if runs[i].ID == runID {
			return &runs[i], nil
		}
	}
	return nil, fmt.Errorf("schedule run %s not found", runID)
}
