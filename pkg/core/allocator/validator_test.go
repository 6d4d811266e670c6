package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/shift-grid/pkg/core/model"
)

func newValidationState(names ...string) *ScheduleState {
	return &ScheduleState{
		Roster:    NewRoster(names),
		Grid:      NewGrid(2),
		WeeklyCap: 5,
	}
}

func findErrors(errors []SlotValidationError, criterionName string) []SlotValidationError {
	var found []SlotValidationError
	for _, err := range errors {
		if err.CriterionName == criterionName {
			found = append(found, err)
		}
	}
	return found
}

func TestValidateScheduleState_ValidState(t *testing.T) {
	state := newValidationState("alice")
	allocator := NewAllocator(state, nil, fixedPicker{})
	allocator.assign(state.Roster.Get(0), state.Grid.Slot(model.Monday, model.Morning), PhasePreference)

	errors := ValidateScheduleState(state, DefaultCriteria())
	assert.Empty(t, errors)
}

func TestValidateCoreInvariants_DaysWorkedMismatch(t *testing.T) {
	state := newValidationState("alice")
	state.Roster.Get(0).DaysWorked = 2

	errors := validateCoreInvariants(state)
	require.NotEmpty(t, errors)

	found := false
	for _, err := range errors {
		if err.CriterionName == "CoreInvariant" && err.Description != "" {
			if err.Description == "Employee 'alice' (#0) has 2 days worked but 0 assigned days" {
				found = true
			}
		}
	}
	assert.True(t, found, "Should report days worked mismatch")
}

func TestValidateCoreInvariants_MissingFromSlot(t *testing.T) {
	state := newValidationState("alice")
	alice := state.Roster.Get(0)
	alice.Assigned[model.Tuesday.Index()] = model.Evening
	alice.DaysWorked = 1

	errors := validateCoreInvariants(state)
	require.NotEmpty(t, errors)

	assert.Equal(t, SlotRef{Day: model.Tuesday, Shift: model.Evening}, errors[0].Slot)
	assert.Contains(t, errors[0].Description, "missing from the slot")
}

func TestWeeklyCapCriterion_Validate(t *testing.T) {
	state := newValidationState("alice")
	state.WeeklyCap = 1

	alice := state.Roster.Get(0)
	alice.Assigned[model.Monday.Index()] = model.Morning
	alice.Assigned[model.Tuesday.Index()] = model.Evening
	alice.DaysWorked = 2

	errors := NewWeeklyCapCriterion().ValidateScheduleState(state)
	require.Len(t, errors, 1)
	assert.Equal(t, "WeeklyCap", errors[0].CriterionName)
	assert.Equal(t, SlotRef{Day: model.Tuesday, Shift: model.Evening}, errors[0].Slot)
	assert.Contains(t, errors[0].Description, "works 2 days but the weekly cap is 1")
}

func TestWeeklyCapCriterion_IsSlotValid(t *testing.T) {
	state := newValidationState("alice")
	criterion := NewWeeklyCapCriterion()
	slot := state.Grid.Slot(model.Monday, model.Morning)

	assert.True(t, criterion.IsSlotValid(state, &Employee{DaysWorked: 4}, slot))
	assert.False(t, criterion.IsSlotValid(state, &Employee{DaysWorked: 5}, slot))
}

func TestOneShiftPerDayCriterion_IsSlotValid(t *testing.T) {
	state := newValidationState("alice")
	criterion := NewOneShiftPerDayCriterion()

	employee := &Employee{}
	employee.Assigned[model.Monday.Index()] = model.Morning

	assert.False(t, criterion.IsSlotValid(state, employee, state.Grid.Slot(model.Monday, model.Evening)))
	assert.True(t, criterion.IsSlotValid(state, employee, state.Grid.Slot(model.Tuesday, model.Evening)))
}

func TestOneShiftPerDayCriterion_Validate(t *testing.T) {
	state := newValidationState("alice", "bob")
	state.Grid.Append(model.Monday, model.Morning, "alice")
	state.Grid.Append(model.Monday, model.Evening, "alice")

	errors := NewOneShiftPerDayCriterion().ValidateScheduleState(state)
	require.Len(t, errors, 1)
	assert.Equal(t, SlotRef{Day: model.Monday, Shift: model.Evening}, errors[0].Slot)
	assert.Contains(t, errors[0].Description, "alice")
}

func TestOneShiftPerDayCriterion_DuplicateNamesAllowedOncePerEntry(t *testing.T) {
	state := newValidationState("alice", "alice")
	state.Grid.Append(model.Monday, model.Morning, "alice")
	state.Grid.Append(model.Monday, model.Evening, "alice")

	errors := NewOneShiftPerDayCriterion().ValidateScheduleState(state)
	assert.Empty(t, errors)
}

func TestSlotCapacityCriterion(t *testing.T) {
	state := newValidationState("a", "b", "c")
	criterion := NewSlotCapacityCriterion()
	slot := state.Grid.Slot(model.Friday, model.Afternoon)

	assert.True(t, criterion.IsSlotValid(state, state.Roster.Get(0), slot))

	state.Grid.Append(model.Friday, model.Afternoon, "a")
	state.Grid.Append(model.Friday, model.Afternoon, "b")
	assert.False(t, criterion.IsSlotValid(state, state.Roster.Get(2), slot))
	assert.Empty(t, criterion.ValidateScheduleState(state))

	state.Grid.Append(model.Friday, model.Afternoon, "c")
	errors := criterion.ValidateScheduleState(state)
	require.Len(t, errors, 1)
	assert.Equal(t, "SlotCapacity", errors[0].CriterionName)
	assert.Contains(t, errors[0].Description, "3 occupants but the target is 2")
}

func TestValidateScheduleState_CollectsFromAllCriteria(t *testing.T) {
	state := newValidationState("a")
	for i := 0; i < 3; i++ {
		state.Grid.Append(model.Monday, model.Morning, "a")
	}

	errors := ValidateScheduleState(state, DefaultCriteria())

	assert.NotEmpty(t, findErrors(errors, "CoreInvariant"))
	assert.NotEmpty(t, findErrors(errors, "OneShiftPerDay"))
	assert.NotEmpty(t, findErrors(errors, "SlotCapacity"))
	assert.Empty(t, findErrors(errors, "WeeklyCap"))
}

func TestIsSlotValidForEmployee_AnyVeto(t *testing.T) {
	state := newValidationState("alice")
	alice := state.Roster.Get(0)
	slot := state.Grid.Slot(model.Monday, model.Morning)

	assert.True(t, IsSlotValidForEmployee(state, alice, slot, DefaultCriteria()))
	assert.True(t, IsSlotValidForEmployee(state, alice, slot, nil))

	alice.DaysWorked = 5
	assert.False(t, IsSlotValidForEmployee(state, alice, slot, DefaultCriteria()))
}

func TestSeededPicker_Reproducible(t *testing.T) {
	first := NewSeededPicker(123)
	second := NewSeededPicker(123)

	for i := 0; i < 50; i++ {
		n := 1 + i%7
		a, b := first.Pick(n), second.Pick(n)
		assert.Equal(t, a, b)
		assert.GreaterOrEqual(t, a, 0)
		assert.Less(t, a, n)
	}
	assert.Equal(t, uint64(123), first.Seed())
}
