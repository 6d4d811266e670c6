package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/shift-grid/pkg/db"
)

// GetAssignments retrieves the assignments of a run, ordered by date, shift and position
func (d *DB) GetAssignments(ctx context.Context, runID string) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, run_id, shift_date, day, shift, position, employee_name, phase
		FROM assignment
		WHERE run_id = $1
		ORDER BY shift_date,
			CASE shift WHEN 'morning' THEN 0 WHEN 'afternoon' THEN 1 ELSE 2 END,
			position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		var a db.Assignment
		var shiftDate time.Time
		if err := rows.Scan(&a.ID, &a.RunID, &shiftDate, &a.Day, &a.Shift, &a.Position, &a.EmployeeName, &a.Phase); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		a.ShiftDate = shiftDate.Format("2006-01-02")
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

func insertAssignments(ctx context.Context, tx pgx.Tx, assignments []db.Assignment) error {
	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO assignment (id, run_id, shift_date, day, shift, position, employee_name, phase)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, a.ID, a.RunID, a.ShiftDate, a.Day, a.Shift, a.Position, a.EmployeeName, a.Phase)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}
	return nil
}
