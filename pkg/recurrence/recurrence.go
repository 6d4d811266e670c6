package recurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/jakechorley/shift-grid/pkg/core/model"
)

// DaysFromRRule returns the week days selected by the BYDAY part of an RRULE,
// in Mon -> Sun order. An RRULE without BYDAY selects every day.
func DaysFromRRule(rule string) ([]model.Day, error) {
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("invalid rrule %q: %w", rule, err)
	}

	if len(opt.Byweekday) == 0 {
		return model.Days[:], nil
	}

	selected := make(map[int]bool)
	for _, weekday := range opt.Byweekday {
		// rrule counts weekdays from Monday = 0, same as model.Days
		selected[weekday.Day()] = true
	}

	days := make([]model.Day, 0, len(selected))
	for i, day := range model.Days {
		if selected[i] {
			days = append(days, day)
		}
	}
	return days, nil
}

// WeekDates returns the seven consecutive dates starting at weekStart
func WeekDates(weekStart time.Time) ([]time.Time, error) {
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Count:   model.DaysPerWeek,
		Dtstart: weekStart,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build week rrule: %w", err)
	}
	return r.All(), nil
}

// NextMonday returns the date of the next Monday strictly after t, at midnight UTC
func NextMonday(t time.Time) time.Time {
	daysUntilMonday := (int(time.Monday) - int(t.Weekday()) + 7) % 7
	if daysUntilMonday == 0 {
		daysUntilMonday = 7
	}
	next := t.AddDate(0, 0, daysUntilMonday)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseWeekStart parses a YYYY-MM-DD date that must fall on a Monday
func ParseWeekStart(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("week start must be a YYYY-MM-DD date: %w", err)
	}
	if date.Weekday() != time.Monday {
		return time.Time{}, fmt.Errorf("week start %s is a %s, expected a Monday", s, date.Weekday())
	}
	return date, nil
}
