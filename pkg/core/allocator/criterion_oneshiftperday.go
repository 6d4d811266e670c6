package allocator

import (
	"fmt"

	"github.com/jakechorley/shift-grid/pkg/core/model"
)

// OneShiftPerDayCriterion prevents an employee from being booked twice on the same day.
//
// Validity:
//   - Returns false if the employee already has a shift on the slot's day
//
// Validation:
//   - Reports a day where a name staffs more slots than there are roster
//     entries carrying that name
type OneShiftPerDayCriterion struct{}

// NewOneShiftPerDayCriterion creates a new OneShiftPerDayCriterion
func NewOneShiftPerDayCriterion() *OneShiftPerDayCriterion {
	return &OneShiftPerDayCriterion{}
}

func (c *OneShiftPerDayCriterion) Name() string {
	return "OneShiftPerDay"
}

func (c *OneShiftPerDayCriterion) IsSlotValid(state *ScheduleState, employee *Employee, slot *Slot) bool {
	return !employee.IsAssigned(slot.Day)
}

func (c *OneShiftPerDayCriterion) ValidateScheduleState(state *ScheduleState) []SlotValidationError {
	var errors []SlotValidationError

	// Duplicate names are separate employees, so each may work once per day
	entriesPerName := make(map[string]int)
	for _, employee := range state.Roster.Employees() {
		entriesPerName[employee.Name]++
	}

	for _, day := range model.Days {
		seen := make(map[string]int)
		for _, shift := range model.Shifts {
			for _, name := range state.Grid.Occupants(day, shift) {
				seen[name]++
				if seen[name] > entriesPerName[name] {
					errors = append(errors, SlotValidationError{
						Slot:          SlotRef{Day: day, Shift: shift},
						CriterionName: c.Name(),
						Description:   fmt.Sprintf("Employee '%s' is booked on more than one shift on %s", name, day),
					})
				}
			}
		}
	}

	return errors
}
