package allocator

import "github.com/jakechorley/shift-grid/pkg/core/model"

// AssignPreferences places each employee into their preferred shift for every
// day they stated one. Employees are processed in roster order, days Mon -> Sun.
//
// A preference is silently skipped when the employee has reached the weekly cap,
// already works that day, or the preferred slot is full. Preferences naming an
// unknown shift are treated as no preference.
func (a *Allocator) AssignPreferences(prefs model.Preferences) {
	if len(prefs) == 0 {
		return
	}

	for _, employee := range a.state.Roster.Employees() {
		for _, day := range model.Days {
			shift, ok := prefs.For(employee.Name, day)
			if !ok {
				continue
			}

			slot := a.state.Grid.Slot(day, shift)
			if slot == nil {
				continue
			}

			if !IsSlotValidForEmployee(a.state, employee, slot, a.criteria) {
				continue
			}

			a.assign(employee, slot, PhasePreference)
		}
	}
}
