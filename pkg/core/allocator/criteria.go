package allocator

// SlotValidationError represents a constraint violation found in a schedule state
type SlotValidationError struct {
	Slot          SlotRef
	CriterionName string
	Description   string
}

// Criterion defines a hard scheduling constraint.
// Every phase consults the criteria before placing an employee, and the final
// state is checked against them once allocation completes.
type Criterion interface {
	// Name returns a human-readable identifier for this criterion
	Name() string

	// IsSlotValid determines if the employee may be appended to the slot.
	// This acts as a veto - if ANY criterion returns false, the assignment is skipped.
	IsSlotValid(state *ScheduleState, employee *Employee, slot *Slot) bool

	// ValidateScheduleState checks the final state against this criterion.
	// Returns a slice of validation errors (empty if all valid).
	ValidateScheduleState(state *ScheduleState) []SlotValidationError
}

// DefaultCriteria returns the constraints every run enforces:
// weekly cap, one shift per day and slot capacity
func DefaultCriteria() []Criterion {
	return []Criterion{
		NewWeeklyCapCriterion(),
		NewOneShiftPerDayCriterion(),
		NewSlotCapacityCriterion(),
	}
}

// IsSlotValidForEmployee returns true if no criterion vetoes placing employee in slot
func IsSlotValidForEmployee(state *ScheduleState, employee *Employee, slot *Slot, criteria []Criterion) bool {
	for _, criterion := range criteria {
		if !criterion.IsSlotValid(state, employee, slot) {
			return false
		}
	}
	return true
}
