package allocator

import (
	"fmt"
	"slices"

	"github.com/jakechorley/shift-grid/pkg/core/model"
)

const coreInvariantName = "CoreInvariant"

// ValidateScheduleState validates the final schedule state against the core
// invariants and all provided criteria.
// Returns a slice of validation errors for any constraint violations.
// An empty slice indicates the schedule is valid.
func ValidateScheduleState(state *ScheduleState, criteria []Criterion) []SlotValidationError {
	errors := validateCoreInvariants(state)

	for _, criterion := range criteria {
		errors = append(errors, criterion.ValidateScheduleState(state)...)
	}

	return errors
}

// validateCoreInvariants checks that employee records and grid agree:
//   - DaysWorked equals the number of assigned days
//   - every assigned day has the employee's name in the matching slot
//   - the grid holds exactly as many occupants as days worked across the roster
func validateCoreInvariants(state *ScheduleState) []SlotValidationError {
	var errors []SlotValidationError
	totalDaysWorked := 0

	for _, employee := range state.Roster.Employees() {
		assignedDays := 0
		for i, shift := range employee.Assigned {
			if shift == model.NoShift {
				continue
			}
			assignedDays++

			day := model.Days[i]
			if !slices.Contains(state.Grid.Occupants(day, shift), employee.Name) {
				errors = append(errors, SlotValidationError{
					Slot:          SlotRef{Day: day, Shift: shift},
					CriterionName: coreInvariantName,
					Description:   fmt.Sprintf("Employee '%s' (#%d) is assigned here but missing from the slot", employee.Name, employee.Index),
				})
			}
		}

		if assignedDays != employee.DaysWorked {
			errors = append(errors, SlotValidationError{
				CriterionName: coreInvariantName,
				Description: fmt.Sprintf("Employee '%s' (#%d) has %d days worked but %d assigned days",
					employee.Name, employee.Index, employee.DaysWorked, assignedDays),
			})
		}
		totalDaysWorked += employee.DaysWorked
	}

	totalOccupants := 0
	for _, slot := range state.Grid.Slots() {
		totalOccupants += slot.Occupancy()
	}
	if totalOccupants != totalDaysWorked {
		errors = append(errors, SlotValidationError{
			CriterionName: coreInvariantName,
			Description:   fmt.Sprintf("Grid holds %d occupants but the roster has worked %d days", totalOccupants, totalDaysWorked),
		})
	}

	return errors
}
