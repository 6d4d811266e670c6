package allocator

import (
	"fmt"

	"github.com/jakechorley/shift-grid/pkg/core/model"
)

// Phase identifies which allocation phase produced an assignment
type Phase string

const (
	PhasePreference         Phase = "preference"
	PhaseConflictResolution Phase = "conflict_resolution"
	PhaseGapFill            Phase = "gap_fill"
)

// Assignment records a single placement of an employee into a slot
type Assignment struct {
	EmployeeIndex int
	Name          string
	Day           model.Day
	Shift         model.Shift
	Phase         Phase
}

// SlotTarget overrides the staffing target of one slot
type SlotTarget struct {
	Day    model.Day
	Shift  model.Shift
	Target int
}

// AllocationConfig contains the configuration for a run
type AllocationConfig struct {
	// Names is the roster, in processing order
	Names []string

	// Preferences stated by employees (may be nil)
	Preferences model.Preferences

	// MinStaffing is the default target of every slot (DefaultMinStaffing if zero)
	MinStaffing int

	// WeeklyCap is the maximum number of days an employee may work (DefaultWeeklyCap if zero)
	WeeklyCap int

	// SlotTargets override MinStaffing for individual slots, applied in order
	SlotTargets []SlotTarget

	// Picker drives the random choices of gap filling
	Picker Picker

	// Criteria to enforce (DefaultCriteria if empty)
	Criteria []Criterion
}

// AllocationOutcome represents the result of a run
type AllocationOutcome struct {
	// State is the final roster and grid
	State *ScheduleState

	// Assignments in the order they were made
	Assignments []Assignment

	// Understaffed contains the slots left below target after gap filling
	Understaffed []SlotRef

	// ValidationErrors contains any constraint violations found in the final state
	ValidationErrors []SlotValidationError
}

// Allocator runs the allocation phases over a schedule state
type Allocator struct {
	criteria    []Criterion
	state       *ScheduleState
	picker      Picker
	assignments []Assignment
}

// NewAllocator creates an allocator over an existing state.
// If criteria is empty the default criteria are used.
func NewAllocator(state *ScheduleState, criteria []Criterion, picker Picker) *Allocator {
	if len(criteria) == 0 {
		criteria = DefaultCriteria()
	}
	return &Allocator{
		criteria: criteria,
		state:    state,
		picker:   picker,
	}
}

// State returns the state the allocator mutates
func (a *Allocator) State() *ScheduleState {
	return a.state
}

// Assignments returns every assignment made so far, in order
func (a *Allocator) Assignments() []Assignment {
	return a.assignments
}

// Allocate builds an empty roster and grid and runs preference assignment,
// conflict resolution and gap filling in sequence
func Allocate(config AllocationConfig) (*AllocationOutcome, error) {
	state, err := InitScheduleState(config)
	if err != nil {
		return nil, err
	}
	if config.Picker == nil {
		return nil, fmt.Errorf("a picker is required for gap filling")
	}

	allocator := NewAllocator(state, config.Criteria, config.Picker)

	allocator.AssignPreferences(config.Preferences)
	allocator.ResolveConflicts()
	allocator.FillGaps()

	return allocator.buildOutcome(), nil
}

// InitScheduleState validates the config and creates the empty roster and grid
func InitScheduleState(config AllocationConfig) (*ScheduleState, error) {
	if len(config.Names) == 0 {
		return nil, fmt.Errorf("at least one employee name is required")
	}

	minStaffing := config.MinStaffing
	if minStaffing == 0 {
		minStaffing = DefaultMinStaffing
	}
	if minStaffing < 0 {
		return nil, fmt.Errorf("minimum staffing must be positive, got %d", minStaffing)
	}

	weeklyCap := config.WeeklyCap
	if weeklyCap == 0 {
		weeklyCap = DefaultWeeklyCap
	}
	if weeklyCap < 0 || weeklyCap > model.DaysPerWeek {
		return nil, fmt.Errorf("weekly cap must be between 1 and %d, got %d", model.DaysPerWeek, weeklyCap)
	}

	grid := NewGrid(minStaffing)
	for i, override := range config.SlotTargets {
		if grid.Slot(override.Day, override.Shift) == nil {
			return nil, fmt.Errorf("slot target %d refers to unknown slot %s/%s", i, override.Day, override.Shift)
		}
		if override.Target < 1 {
			return nil, fmt.Errorf("slot target %d for %s/%s must be positive, got %d", i, override.Day, override.Shift, override.Target)
		}
		grid.SetTarget(override.Day, override.Shift, override.Target)
	}

	return &ScheduleState{
		Roster:    NewRoster(config.Names),
		Grid:      grid,
		WeeklyCap: weeklyCap,
	}, nil
}

// assign places employee in slot and records the assignment on both sides
func (a *Allocator) assign(employee *Employee, slot *Slot, phase Phase) {
	a.state.Grid.Append(slot.Day, slot.Shift, employee.Name)
	employee.Assigned[slot.Day.Index()] = slot.Shift
	employee.DaysWorked++

	a.assignments = append(a.assignments, Assignment{
		EmployeeIndex: employee.Index,
		Name:          employee.Name,
		Day:           slot.Day,
		Shift:         slot.Shift,
		Phase:         phase,
	})
}

// buildOutcome creates the final allocation outcome report
func (a *Allocator) buildOutcome() *AllocationOutcome {
	// Initialize with empty slices (not nil) for easier consumption
	outcome := &AllocationOutcome{
		State:            a.state,
		Assignments:      a.assignments,
		Understaffed:     []SlotRef{},
		ValidationErrors: []SlotValidationError{},
	}

	if understaffed := a.state.Grid.Understaffed(); understaffed != nil {
		outcome.Understaffed = understaffed
	}
	if errs := ValidateScheduleState(a.state, a.criteria); errs != nil {
		outcome.ValidationErrors = errs
	}
	if outcome.Assignments == nil {
		outcome.Assignments = []Assignment{}
	}

	return outcome
}
