package preferences

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/shift-grid/pkg/core/model"
	"github.com/jakechorley/shift-grid/pkg/recurrence"
)

// RecurringPreference asks for the same shift on every day selected by an RRULE
type RecurringPreference struct {
	RRule string `yaml:"rrule" validate:"required"`
	Shift string `yaml:"shift" validate:"required,oneof=morning afternoon evening"`
}

// EmployeePreferences is one employee's entry in a preferences file
type EmployeePreferences struct {
	Name      string                `yaml:"name" validate:"required"`
	Days      map[string]string     `yaml:"days,omitempty" validate:"omitempty,dive,keys,oneof=Mon Tue Wed Thu Fri Sat Sun,endkeys,oneof=morning afternoon evening"`
	Recurring []RecurringPreference `yaml:"recurring,omitempty" validate:"dive"`
}

// File is the on-disk preferences format
type File struct {
	Employees []EmployeePreferences `yaml:"employees" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadFromPath reads and validates a preferences file
func LoadFromPath(path string) (model.Preferences, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a preferences document.
// Recurring preferences of every entry are applied first, in order, then the
// explicit days of every entry, so an explicit day always wins over a recurring
// rule even when the name is repeated across entries.
func Parse(data []byte) (model.Preferences, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse preferences file: %w", err)
	}

	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("preferences validation failed: %w", err)
	}

	prefs := model.Preferences{}
	for i, entry := range file.Employees {
		for j, recurring := range entry.Recurring {
			days, err := recurrence.DaysFromRRule(recurring.RRule)
			if err != nil {
				return nil, fmt.Errorf("employees[%d].recurring[%d]: %w", i, j, err)
			}
			for _, day := range days {
				prefs.Set(entry.Name, day, model.Shift(recurring.Shift))
			}
		}
	}

	for i, entry := range file.Employees {
		for dayName, shiftName := range entry.Days {
			day, err := model.ParseDay(dayName)
			if err != nil {
				return nil, fmt.Errorf("employees[%d]: %w", i, err)
			}
			shift, err := model.ParseShift(shiftName)
			if err != nil {
				return nil, fmt.Errorf("employees[%d]: %w", i, err)
			}
			prefs.Set(entry.Name, day, shift)
		}
	}

	return prefs, nil
}
