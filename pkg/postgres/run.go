package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/shift-grid/pkg/db"
)

// GetRuns retrieves all schedule run records
func (d *DB) GetRuns(ctx context.Context) ([]db.ScheduleRun, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, week_start, seed::TEXT, min_staffing, weekly_cap, created_at
		FROM schedule_run
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule runs: %w", err)
	}
	defer rows.Close()

	var runs []db.ScheduleRun
	for rows.Next() {
		var r db.ScheduleRun
		var weekStart time.Time
		var seed string
		if err := rows.Scan(&r.ID, &weekStart, &seed, &r.MinStaffing, &r.WeeklyCap, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan schedule run: %w", err)
		}
		r.WeekStart = weekStart.Format("2006-01-02")
		r.Seed, err = strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse seed of schedule run %s: %w", r.ID, err)
		}
		r.CreatedAt = r.CreatedAt.UTC()
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule runs: %w", err)
	}

	return runs, nil
}

// InsertSchedule inserts a run and its assignments in a single transaction
func (d *DB) InsertSchedule(ctx context.Context, run *db.ScheduleRun, assignments []db.Assignment) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := insertRun(ctx, tx, run); err != nil {
		return err
	}
	if err := insertAssignments(ctx, tx, assignments); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func insertRun(ctx context.Context, tx pgx.Tx, run *db.ScheduleRun) error {
	// seeds use the full uint64 range, which BIGINT cannot hold
	_, err := tx.Exec(ctx, `
		INSERT INTO schedule_run (id, week_start, seed, min_staffing, weekly_cap, created_at)
		VALUES ($1, $2, $3::TEXT::NUMERIC, $4, $5, $6)
	`, run.ID, run.WeekStart, strconv.FormatUint(run.Seed, 10), run.MinStaffing, run.WeeklyCap, run.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert schedule run: %w", err)
	}
	return nil
}
