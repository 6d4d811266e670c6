package db

import "context"

// ScheduleStore defines the interface for published schedule operations.
// postgres.DB implements this interface.
type ScheduleStore interface {
	// InsertSchedule stores a run and its assignments atomically: either both
	// are stored or neither is.
	InsertSchedule(ctx context.Context, run *ScheduleRun, assignments []Assignment) error
	GetRuns(ctx context.Context) ([]ScheduleRun, error)
	GetAssignments(ctx context.Context, runID string) ([]Assignment, error)
}
