package model

import (
	"fmt"
	"strings"
)

// Day is a day of the scheduling week
type Day string

const (
	Monday    Day = "Mon"
	Tuesday   Day = "Tue"
	Wednesday Day = "Wed"
	Thursday  Day = "Thu"
	Friday    Day = "Fri"
	Saturday  Day = "Sat"
	Sunday    Day = "Sun"
)

// DaysPerWeek is the number of days in the grid
const DaysPerWeek = 7

// Days lists the week in iteration order (Mon -> Sun)
var Days = [DaysPerWeek]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Index returns the position of the day in Days, or -1 if the day is unknown
func (d Day) Index() int {
	for i, day := range Days {
		if day == d {
			return i
		}
	}
	return -1
}

func (d Day) IsValid() bool {
	return d.Index() >= 0
}

// ParseDay accepts the short day name in any case ("mon", "Mon", "MON")
func ParseDay(s string) (Day, error) {
	s = strings.TrimSpace(s)
	for _, day := range Days {
		if strings.EqualFold(string(day), s) {
			return day, nil
		}
	}
	return "", fmt.Errorf("unknown day %q (expected one of Mon, Tue, Wed, Thu, Fri, Sat, Sun)", s)
}

// Shift is a shift within a day. The zero value means no shift.
type Shift string

const (
	NoShift   Shift = ""
	Morning   Shift = "morning"
	Afternoon Shift = "afternoon"
	Evening   Shift = "evening"
)

// ShiftsPerDay is the number of shifts in each day of the grid
const ShiftsPerDay = 3

// Shifts lists shifts in precedence order (morning before afternoon before evening)
var Shifts = [ShiftsPerDay]Shift{Morning, Afternoon, Evening}

// Index returns the position of the shift in Shifts, or -1 if the shift is unknown
func (s Shift) Index() int {
	for i, shift := range Shifts {
		if shift == s {
			return i
		}
	}
	return -1
}

func (s Shift) IsValid() bool {
	return s.Index() >= 0
}

// ParseShift accepts a shift name in any case. Surrounding whitespace is ignored.
func ParseShift(s string) (Shift, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	shift := Shift(s)
	if !shift.IsValid() {
		return NoShift, fmt.Errorf("unknown shift %q (expected one of morning, afternoon, evening)", s)
	}
	return shift, nil
}

// Preferences maps an employee name to the shift they would like on each day.
// A day missing from the inner map means no preference was stated.
type Preferences map[string]map[Day]Shift

// Set records a preference, creating the inner map if needed
func (p Preferences) Set(name string, day Day, shift Shift) {
	if p[name] == nil {
		p[name] = make(map[Day]Shift)
	}
	p[name][day] = shift
}

// For returns the preferred shift of name on day
func (p Preferences) For(name string, day Day) (Shift, bool) {
	days, ok := p[name]
	if !ok {
		return NoShift, false
	}
	shift, ok := days[day]
	if !ok || shift == NoShift {
		return NoShift, false
	}
	return shift, true
}
