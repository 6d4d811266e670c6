package allocator

import "fmt"

// SlotCapacityCriterion prevents overfilling of slots.
//
// Validity:
//   - Returns false if the slot already holds its target number of occupants
//
// Validation:
//   - Reports every slot holding more occupants than its target
//   - Understaffed slots are not errors; they are reported separately in the outcome
type SlotCapacityCriterion struct{}

// NewSlotCapacityCriterion creates a new SlotCapacityCriterion
func NewSlotCapacityCriterion() *SlotCapacityCriterion {
	return &SlotCapacityCriterion{}
}

func (c *SlotCapacityCriterion) Name() string {
	return "SlotCapacity"
}

func (c *SlotCapacityCriterion) IsSlotValid(state *ScheduleState, employee *Employee, slot *Slot) bool {
	return slot.RemainingCapacity() > 0
}

func (c *SlotCapacityCriterion) ValidateScheduleState(state *ScheduleState) []SlotValidationError {
	var errors []SlotValidationError

	for _, slot := range state.Grid.Slots() {
		if slot.Occupancy() > slot.Target {
			errors = append(errors, SlotValidationError{
				Slot:          SlotRef{Day: slot.Day, Shift: slot.Shift},
				CriterionName: c.Name(),
				Description:   fmt.Sprintf("Slot has %d occupants but the target is %d", slot.Occupancy(), slot.Target),
			})
		}
	}

	return errors
}
