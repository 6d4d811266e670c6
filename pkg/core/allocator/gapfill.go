package allocator

// FillGaps tops up every slot below its target with randomly chosen eligible
// employees. Slots are visited Mon -> Sun, morning -> evening.
//
// An employee is eligible for a slot when no criterion vetoes it (under the
// weekly cap and not yet working that day). When nobody is eligible the slot is
// left understaffed and filling moves on to the next slot.
func (a *Allocator) FillGaps() {
	for _, slot := range a.state.Grid.Slots() {
		for !slot.IsFull() {
			candidates := a.eligibleEmployees(slot)
			if len(candidates) == 0 {
				break
			}

			chosen := candidates[a.picker.Pick(len(candidates))]
			a.assign(chosen, slot, PhaseGapFill)
		}
	}
}

// eligibleEmployees returns, in roster order, the employees that may be placed in slot
func (a *Allocator) eligibleEmployees(slot *Slot) []*Employee {
	var candidates []*Employee
	for _, employee := range a.state.Roster.Employees() {
		if IsSlotValidForEmployee(a.state, employee, slot, a.criteria) {
			candidates = append(candidates, employee)
		}
	}
	return candidates
}
