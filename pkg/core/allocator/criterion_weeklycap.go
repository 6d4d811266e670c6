package allocator

import (
	"fmt"

	"github.com/jakechorley/shift-grid/pkg/core/model"
)

// WeeklyCapCriterion stops an employee from working more than WeeklyCap days.
//
// Validity:
//   - Returns false once the employee's DaysWorked has reached the cap
//
// Validation:
//   - Reports every employee whose DaysWorked exceeds the cap
type WeeklyCapCriterion struct{}

// NewWeeklyCapCriterion creates a new WeeklyCapCriterion
func NewWeeklyCapCriterion() *WeeklyCapCriterion {
	return &WeeklyCapCriterion{}
}

func (c *WeeklyCapCriterion) Name() string {
	return "WeeklyCap"
}

func (c *WeeklyCapCriterion) IsSlotValid(state *ScheduleState, employee *Employee, slot *Slot) bool {
	return !employee.AtCap(state.WeeklyCap)
}

func (c *WeeklyCapCriterion) ValidateScheduleState(state *ScheduleState) []SlotValidationError {
	var errors []SlotValidationError

	for _, employee := range state.Roster.Employees() {
		if employee.DaysWorked <= state.WeeklyCap {
			continue
		}

		// Attribute the error to the last slot the employee was placed in
		var ref SlotRef
		for i := len(employee.Assigned) - 1; i >= 0; i-- {
			if shift := employee.Assigned[i]; shift != model.NoShift {
				ref = SlotRef{Day: model.Days[i], Shift: shift}
				break
			}
		}

		errors = append(errors, SlotValidationError{
			Slot:          ref,
			CriterionName: c.Name(),
			Description: fmt.Sprintf("Employee '%s' (#%d) works %d days but the weekly cap is %d",
				employee.Name, employee.Index, employee.DaysWorked, state.WeeklyCap),
		})
	}

	return errors
}
