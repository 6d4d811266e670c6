package allocator

import (
	"github.com/jakechorley/shift-grid/pkg/core/model"
)

// Default limits used when a config does not override them
const (
	DefaultMinStaffing = 2
	DefaultWeeklyCap   = 5
)

// Employee is one entry of the roster together with its scheduling state
type Employee struct {
	// Index is the position of the employee in the roster and its identity during a run.
	// Names are not guaranteed unique.
	Index int

	// Name as supplied by the input collaborator
	Name string

	// DaysWorked counts the days with an assignment
	DaysWorked int

	// Assigned holds the shift worked on each day (indexed like model.Days).
	// model.NoShift means the day is unassigned.
	Assigned [model.DaysPerWeek]model.Shift
}

// IsAssigned returns true if the employee already works a shift on day
func (e *Employee) IsAssigned(day model.Day) bool {
	_, ok := e.AssignedShift(day)
	return ok
}

// AssignedShift returns the shift worked on day, if any
func (e *Employee) AssignedShift(day model.Day) (model.Shift, bool) {
	idx := day.Index()
	if idx < 0 {
		return model.NoShift, false
	}
	shift := e.Assigned[idx]
	return shift, shift != model.NoShift
}

// AtCap returns true if the employee has reached the weekly cap
func (e *Employee) AtCap(weeklyCap int) bool {
	return e.DaysWorked >= weeklyCap
}

// RemainingDays returns how many more days the employee can be assigned
func (e *Employee) RemainingDays(weeklyCap int) int {
	return max(weeklyCap-e.DaysWorked, 0)
}

// Roster is an index addressed arena of employees.
// Employees are created once and mutated in place by the allocation phases.
type Roster struct {
	employees []*Employee
}

// NewRoster creates one employee per name, in input order, with nothing assigned.
// Duplicate names produce independent entries.
func NewRoster(names []string) *Roster {
	employees := make([]*Employee, len(names))
	for i, name := range names {
		employees[i] = &Employee{
			Index: i,
			Name:  name,
		}
	}
	return &Roster{employees: employees}
}

// Len returns the number of employees in the roster
func (r *Roster) Len() int {
	return len(r.employees)
}

// Get returns the employee at index i
func (r *Roster) Get(i int) *Employee {
	return r.employees[i]
}

// Employees returns all employees in roster order
func (r *Roster) Employees() []*Employee {
	return r.employees
}

// ByName returns every employee carrying name, in roster order
func (r *Roster) ByName(name string) []*Employee {
	var matches []*Employee
	for _, e := range r.employees {
		if e.Name == name {
			matches = append(matches, e)
		}
	}
	return matches
}

// DuplicateNames returns names that appear more than once, in first-seen order
func (r *Roster) DuplicateNames() []string {
	counts := make(map[string]int)
	var duplicates []string
	for _, e := range r.employees {
		counts[e.Name]++
		if counts[e.Name] == 2 {
			duplicates = append(duplicates, e.Name)
		}
	}
	return duplicates
}

// Slot is a single (day, shift) cell of the grid
type Slot struct {
	Day   model.Day
	Shift model.Shift

	// Target is the minimum-staffing target for the slot.
	// Phases 1 and 2 treat it as an upper bound, phase 3 fills up to it.
	Target int

	// Occupants are the names staffing the slot, in assignment order
	Occupants []string
}

// Occupancy returns the number of occupants
func (s *Slot) Occupancy() int {
	return len(s.Occupants)
}

// IsFull returns true if the slot has reached its target
func (s *Slot) IsFull() bool {
	return s.Occupancy() >= s.Target
}

// RemainingCapacity returns how many occupants are still needed to reach the target
func (s *Slot) RemainingCapacity() int {
	return max(s.Target-s.Occupancy(), 0)
}

// SlotRef identifies a slot without carrying its occupants
type SlotRef struct {
	Day   model.Day
	Shift model.Shift
}

// Grid is the week of slots: 7 days by 3 shifts
type Grid struct {
	slots [model.DaysPerWeek][model.ShiftsPerDay]*Slot
}

// NewGrid creates a grid with every slot empty and set to target
func NewGrid(target int) *Grid {
	g := &Grid{}
	for d, day := range model.Days {
		for s, shift := range model.Shifts {
			g.slots[d][s] = &Slot{
				Day:       day,
				Shift:     shift,
				Target:    target,
				Occupants: []string{},
			}
		}
	}
	return g
}

// Slot returns the slot for day and shift, or nil if either is unknown
func (g *Grid) Slot(day model.Day, shift model.Shift) *Slot {
	d, s := day.Index(), shift.Index()
	if d < 0 || s < 0 {
		return nil
	}
	return g.slots[d][s]
}

// Occupancy returns the current occupant count of a slot
func (g *Grid) Occupancy(day model.Day, shift model.Shift) int {
	slot := g.Slot(day, shift)
	if slot == nil {
		return 0
	}
	return slot.Occupancy()
}

// Append adds name to a slot. No duplicate check is done; callers must not
// double-assign.
func (g *Grid) Append(day model.Day, shift model.Shift, name string) {
	slot := g.Slot(day, shift)
	slot.Occupants = append(slot.Occupants, name)
}

// Occupants returns the names staffing a slot
func (g *Grid) Occupants(day model.Day, shift model.Shift) []string {
	slot := g.Slot(day, shift)
	if slot == nil {
		return nil
	}
	return slot.Occupants
}

// SetTarget changes the staffing target of one slot
func (g *Grid) SetTarget(day model.Day, shift model.Shift, target int) {
	if slot := g.Slot(day, shift); slot != nil {
		slot.Target = target
	}
}

// Slots returns every slot, Mon -> Sun and morning -> evening within a day
func (g *Grid) Slots() []*Slot {
	slots := make([]*Slot, 0, model.DaysPerWeek*model.ShiftsPerDay)
	for d := range g.slots {
		for s := range g.slots[d] {
			slots = append(slots, g.slots[d][s])
		}
	}
	return slots
}

// Understaffed returns the slots below their target, in grid order
func (g *Grid) Understaffed() []SlotRef {
	var refs []SlotRef
	for _, slot := range g.Slots() {
		if !slot.IsFull() {
			refs = append(refs, SlotRef{Day: slot.Day, Shift: slot.Shift})
		}
	}
	return refs
}

// ScheduleState is everything the phases read and mutate during a run
type ScheduleState struct {
	Roster *Roster
	Grid   *Grid

	// WeeklyCap is the maximum number of days an employee may work
	WeeklyCap int
}
