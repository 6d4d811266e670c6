package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/shift-grid/pkg/core/model"
)

func TestNewRoster_CreatesEmptyEmployeesInOrder(t *testing.T) {
	roster := NewRoster([]string{"alice", "bob", "carol"})

	require.Equal(t, 3, roster.Len())
	for i, name := range []string{"alice", "bob", "carol"} {
		employee := roster.Get(i)
		assert.Equal(t, i, employee.Index)
		assert.Equal(t, name, employee.Name)
		assert.Equal(t, 0, employee.DaysWorked)
		for _, day := range model.Days {
			assert.False(t, employee.IsAssigned(day), "%s should be unassigned on %s", name, day)
		}
	}
}

func TestNewRoster_DuplicateNamesAreIndependent(t *testing.T) {
	roster := NewRoster([]string{"alice", "bob", "alice"})

	matches := roster.ByName("alice")
	require.Len(t, matches, 2)
	assert.Equal(t, 0, matches[0].Index)
	assert.Equal(t, 2, matches[1].Index)

	// Mutating one entry leaves the other untouched
	matches[0].DaysWorked = 3
	assert.Equal(t, 0, matches[1].DaysWorked)

	assert.Equal(t, []string{"alice"}, roster.DuplicateNames())
}

func TestNewRoster_NoDuplicates(t *testing.T) {
	roster := NewRoster([]string{"alice", "bob"})
	assert.Empty(t, roster.DuplicateNames())
	assert.Empty(t, roster.ByName("zed"))
}

func TestEmployee_RemainingDays(t *testing.T) {
	employee := &Employee{DaysWorked: 3}
	assert.Equal(t, 2, employee.RemainingDays(5))
	assert.False(t, employee.AtCap(5))

	employee.DaysWorked = 5
	assert.Equal(t, 0, employee.RemainingDays(5))
	assert.True(t, employee.AtCap(5))
}

func TestEmployee_AssignedShiftUnknownDay(t *testing.T) {
	employee := &Employee{}
	shift, ok := employee.AssignedShift(model.Day("Funday"))
	assert.False(t, ok)
	assert.Equal(t, model.NoShift, shift)
}

func TestNewGrid_AllSlotsEmpty(t *testing.T) {
	grid := NewGrid(2)

	slots := grid.Slots()
	require.Len(t, slots, model.DaysPerWeek*model.ShiftsPerDay)

	// Slots come back Mon -> Sun, morning -> evening
	assert.Equal(t, model.Monday, slots[0].Day)
	assert.Equal(t, model.Morning, slots[0].Shift)
	assert.Equal(t, model.Monday, slots[2].Day)
	assert.Equal(t, model.Evening, slots[2].Shift)
	assert.Equal(t, model.Sunday, slots[len(slots)-1].Day)
	assert.Equal(t, model.Evening, slots[len(slots)-1].Shift)

	for _, slot := range slots {
		assert.Equal(t, 0, slot.Occupancy())
		assert.Equal(t, 2, slot.Target)
		assert.NotNil(t, slot.Occupants)
	}
	assert.Len(t, grid.Understaffed(), model.DaysPerWeek*model.ShiftsPerDay)
}

func TestGrid_AppendAndOccupancy(t *testing.T) {
	grid := NewGrid(2)

	grid.Append(model.Tuesday, model.Evening, "alice")
	grid.Append(model.Tuesday, model.Evening, "bob")

	assert.Equal(t, 2, grid.Occupancy(model.Tuesday, model.Evening))
	assert.Equal(t, []string{"alice", "bob"}, grid.Occupants(model.Tuesday, model.Evening))
	assert.Equal(t, 0, grid.Occupancy(model.Tuesday, model.Morning))
	assert.True(t, grid.Slot(model.Tuesday, model.Evening).IsFull())
	assert.NotContains(t, grid.Understaffed(), SlotRef{Day: model.Tuesday, Shift: model.Evening})
}

func TestGrid_AppendDoesNotDeduplicate(t *testing.T) {
	grid := NewGrid(2)

	grid.Append(model.Monday, model.Morning, "alice")
	grid.Append(model.Monday, model.Morning, "alice")

	assert.Equal(t, []string{"alice", "alice"}, grid.Occupants(model.Monday, model.Morning))
}

func TestGrid_UnknownSlot(t *testing.T) {
	grid := NewGrid(2)

	assert.Nil(t, grid.Slot(model.Day("Funday"), model.Morning))
	assert.Nil(t, grid.Slot(model.Monday, model.Shift("night")))
	assert.Equal(t, 0, grid.Occupancy(model.Monday, model.Shift("night")))
	assert.Nil(t, grid.Occupants(model.Monday, model.Shift("night")))
}

func TestGrid_SetTarget(t *testing.T) {
	grid := NewGrid(2)
	grid.SetTarget(model.Saturday, model.Evening, 3)

	assert.Equal(t, 3, grid.Slot(model.Saturday, model.Evening).Target)
	assert.Equal(t, 2, grid.Slot(model.Saturday, model.Afternoon).Target)
	assert.Equal(t, 3, grid.Slot(model.Saturday, model.Evening).RemainingCapacity())
}

func TestInitScheduleState_Defaults(t *testing.T) {
	state, err := InitScheduleState(AllocationConfig{Names: []string{"alice"}})
	require.NoError(t, err)

	assert.Equal(t, DefaultWeeklyCap, state.WeeklyCap)
	assert.Equal(t, 1, state.Roster.Len())
	for _, slot := range state.Grid.Slots() {
		assert.Equal(t, DefaultMinStaffing, slot.Target)
	}
}

func TestInitScheduleState_SlotTargets(t *testing.T) {
	state, err := InitScheduleState(AllocationConfig{
		Names:       []string{"alice"},
		MinStaffing: 1,
		WeeklyCap:   3,
		SlotTargets: []SlotTarget{
			{Day: model.Sunday, Shift: model.Morning, Target: 4},
			{Day: model.Sunday, Shift: model.Morning, Target: 3}, // later wins
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, state.WeeklyCap)
	assert.Equal(t, 3, state.Grid.Slot(model.Sunday, model.Morning).Target)
	assert.Equal(t, 1, state.Grid.Slot(model.Monday, model.Morning).Target)
}

func TestInitScheduleState_Errors(t *testing.T) {
	tests := []struct {
		name    string
		config  AllocationConfig
		errText string
	}{
		{
			name:    "empty roster",
			config:  AllocationConfig{},
			errText: "at least one employee",
		},
		{
			name:    "negative staffing",
			config:  AllocationConfig{Names: []string{"a"}, MinStaffing: -1},
			errText: "minimum staffing",
		},
		{
			name:    "cap above week length",
			config:  AllocationConfig{Names: []string{"a"}, WeeklyCap: 8},
			errText: "weekly cap",
		},
		{
			name: "unknown slot",
			config: AllocationConfig{
				Names:       []string{"a"},
				SlotTargets: []SlotTarget{{Day: model.Monday, Shift: model.Shift("night"), Target: 1}},
			},
			errText: "unknown slot",
		},
		{
			name: "zero slot target",
			config: AllocationConfig{
				Names:       []string{"a"},
				SlotTargets: []SlotTarget{{Day: model.Monday, Shift: model.Morning, Target: 0}},
			},
			errText: "must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InitScheduleState(tt.config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}
