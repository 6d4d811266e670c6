package db

import "time"

// ScheduleRun represents a published schedule run record
type ScheduleRun struct {
	ID          string
	WeekStart   string // Date format (YYYY-MM-DD), always a Monday
	Seed        uint64
	MinStaffing int
	WeeklyCap   int
	CreatedAt   time.Time
}

// Assignment represents one employee placed in one slot of a published run
type Assignment struct {
	ID           string
	RunID        string
	ShiftDate    string // Date format (YYYY-MM-DD)
	Day          string
	Shift        string
	Position     int // order of the employee within the slot, from 0
	EmployeeName string
	Phase        string
}
