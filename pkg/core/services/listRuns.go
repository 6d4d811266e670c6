package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/shift-grid/pkg/db"
)

// RunLister defines the database operations needed to list runs
type RunLister interface {
	GetRuns(ctx context.Context) ([]db.ScheduleRun, error)
}

// ListRuns returns every published run, newest first
func ListRuns(ctx context.Context, store RunLister, logger *zap.Logger) ([]db.ScheduleRun, error) {
	logger.Debug("Fetching schedule runs")

	runs, err := store.GetRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule runs: %w", err)
	}

	db.SortRunsNewestFirst(runs)

	logger.Debug("Found schedule runs", zap.Int("count", len(runs)))
	return runs, nil
}
