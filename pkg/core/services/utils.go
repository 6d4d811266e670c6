package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jakechorley/shift-grid/internal/config"
	"github.com/jakechorley/shift-grid/pkg/core/allocator"
	"github.com/jakechorley/shift-grid/pkg/core/model"
	"github.com/jakechorley/shift-grid/pkg/db"
	"github.com/jakechorley/shift-grid/pkg/recurrence"
)

// slotTargetsFromConfig expands staffing overrides into per-slot targets.
// Later overrides win where they select the same slot.
func slotTargetsFromConfig(overrides []config.StaffingOverride) ([]allocator.SlotTarget, error) {
	var targets []allocator.SlotTarget
	for i, override := range overrides {
		days, err := recurrence.DaysFromRRule(override.Days)
		if err != nil {
			return nil, fmt.Errorf("staffingOverrides[%d]: %w", i, err)
		}

		shifts := model.Shifts[:]
		if override.Shift != "" {
			shift, err := model.ParseShift(override.Shift)
			if err != nil {
				return nil, fmt.Errorf("staffingOverrides[%d]: %w", i, err)
			}
			shifts = []model.Shift{shift}
		}

		for _, day := range days {
			for _, shift := range shifts {
				targets = append(targets, allocator.SlotTarget{Day: day, Shift: shift, Target: override.MinStaffing})
			}
		}
	}
	return targets, nil
}

// toDBAssignments flattens the grid into assignment records. Each occupant
// keeps its position within the slot and the phase that placed it.
func toDBAssignments(runID string, outcome *allocator.AllocationOutcome, weekDates []time.Time) []db.Assignment {
	// phases per slot, in the order the occupants were appended
	phases := make(map[allocator.SlotRef][]allocator.Phase)
	for _, a := range outcome.Assignments {
		ref := allocator.SlotRef{Day: a.Day, Shift: a.Shift}
		phases[ref] = append(phases[ref], a.Phase)
	}

	assignments := []db.Assignment{}
	for _, slot := range outcome.State.Grid.Slots() {
		ref := allocator.SlotRef{Day: slot.Day, Shift: slot.Shift}
		shiftDate := weekDates[slot.Day.Index()].Format("2006-01-02")
		for position, name := range slot.Occupants {
			var phase allocator.Phase
			if position < len(phases[ref]) {
				phase = phases[ref][position]
			}
			assignments = append(assignments, db.Assignment{
				ID:           uuid.New().String(),
				RunID:        runID,
				ShiftDate:    shiftDate,
				Day:          string(slot.Day),
				Shift:        string(slot.Shift),
				Position:     position,
				EmployeeName: name,
				Phase:        string(phase),
			})
		}
	}
	return assignments
}

// gridFromAssignments rebuilds a grid from stored assignments.
// Every slot gets target as its staffing target.
func gridFromAssignments(assignments []db.Assignment, target int) (*allocator.Grid, error) {
	type placed struct {
		day      model.Day
		shift    model.Shift
		position int
		name     string
	}

	entries := make([]placed, 0, len(assignments))
	for _, a := range assignments {
		day, err := model.ParseDay(a.Day)
		if err != nil {
			return nil, fmt.Errorf("assignment %s: %w", a.ID, err)
		}
		shift, err := model.ParseShift(a.Shift)
		if err != nil {
			return nil, fmt.Errorf("assignment %s: %w", a.ID, err)
		}
		entries = append(entries, placed{day: day, shift: shift, position: a.Position, name: a.EmployeeName})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if di, dj := entries[i].day.Index(), entries[j].day.Index(); di != dj {
			return di < dj
		}
		if si, sj := entries[i].shift.Index(), entries[j].shift.Index(); si != sj {
			return si < sj
		}
		return entries[i].position < entries[j].position
	})

	grid := allocator.NewGrid(target)
	for _, e := range entries {
		grid.Append(e.day, e.shift, e.name)
	}
	return grid, nil
}
