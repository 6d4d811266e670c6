package allocator

import "github.com/jakechorley/shift-grid/pkg/core/model"

// ResolveConflicts gives every employee without a shift on a day the first
// shift of that day (morning, then afternoon, then evening) that still has room.
// Employees are processed in roster order, days Mon -> Sun. An employee at the
// weekly cap is left alone.
func (a *Allocator) ResolveConflicts() {
	for _, employee := range a.state.Roster.Employees() {
		for _, day := range model.Days {
			if employee.IsAssigned(day) || employee.AtCap(a.state.WeeklyCap) {
				continue
			}

			for _, shift := range model.Shifts {
				slot := a.state.Grid.Slot(day, shift)
				if !IsSlotValidForEmployee(a.state, employee, slot, a.criteria) {
					continue
				}

				a.assign(employee, slot, PhaseConflictResolution)
				break
			}
		}
	}
}
