package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/shift-grid/pkg/core/allocator"
	"github.com/jakechorley/shift-grid/pkg/db"
	"github.com/jakechorley/shift-grid/pkg/recurrence"
)

// ViewScheduleStore defines the database operations needed to view a published run
type ViewScheduleStore interface {
	GetRuns(ctx context.Context) ([]db.ScheduleRun, error)
	GetAssignments(ctx context.Context, runID string) ([]db.Assignment, error)
}

// ViewScheduleResult is a published run with its grid rebuilt
type ViewScheduleResult struct {
	Run       db.ScheduleRun
	WeekDates []time.Time
	Grid      *allocator.Grid
}

// ViewSchedule loads a published run and rebuilds its grid.
// An empty runID selects the most recently created run.
func ViewSchedule(ctx context.Context, store ViewScheduleStore, logger *zap.Logger, runID string) (*ViewScheduleResult, error) {
	runs, err := ListRuns(ctx, store, logger)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("no published schedule runs found")
	}

	run := &runs[0]
	if runID != "" {
		run, err = db.FindRun(runs, runID)
		if err != nil {
			return nil, err
		}
	}

	logger.Debug("Viewing schedule run", zap.String("run_id", run.ID), zap.String("week_start", run.WeekStart))

	weekStart, err := time.Parse("2006-01-02", run.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to parse week start of run %s: %w", run.ID, err)
	}
	weekDates, err := recurrence.WeekDates(weekStart)
	if err != nil {
		return nil, err
	}

	assignments, err := store.GetAssignments(ctx, run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	grid, err := gridFromAssignments(assignments, run.MinStaffing)
	if err != nil {
		return nil, err
	}

	return &ViewScheduleResult{
		Run:       *run,
		WeekDates: weekDates,
		Grid:      grid,
	}, nil
}
