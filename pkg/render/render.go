package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jakechorley/shift-grid/pkg/core/allocator"
	"github.com/jakechorley/shift-grid/pkg/core/model"
)

// Format selects a renderer
type Format string

const (
	FormatPlain Format = "plain"
	FormatTable Format = "table"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPlain, FormatTable:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (expected plain or table)", s)
}

var (
	headerStyle       = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle         = lipgloss.NewStyle().Padding(0, 1)
	understaffedStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("208"))
)

// Schedule writes grid in the requested format
func Schedule(w io.Writer, format Format, grid *allocator.Grid, dates []time.Time) error {
	switch format {
	case FormatTable:
		_, err := fmt.Fprintln(w, Table(grid, dates))
		return err
	default:
		return Plain(w, grid, dates)
	}
}

// Plain prints each day followed by one line per shift listing its occupants
func Plain(w io.Writer, grid *allocator.Grid, dates []time.Time) error {
	for i, day := range model.Days {
		if _, err := fmt.Fprintln(w, dayHeader(i, day, dates)); err != nil {
			return err
		}
		for _, shift := range model.Shifts {
			occupants := grid.Occupants(day, shift)
			if _, err := fmt.Fprintf(w, "  %s : [%s]\n", shift, strings.Join(occupants, ", ")); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// Table renders the grid as a table with one row per day and one column per shift.
// Cells below their staffing target are marked with the number of missing people.
func Table(grid *allocator.Grid, dates []time.Time) string {
	headers := []string{"Day"}
	for _, shift := range model.Shifts {
		headers = append(headers, string(shift))
	}

	understaffed := make(map[[2]int]bool)
	rows := make([][]string, 0, model.DaysPerWeek)
	for i, day := range model.Days {
		row := []string{dayHeader(i, day, dates)}
		for j, shift := range model.Shifts {
			slot := grid.Slot(day, shift)
			cell := strings.Join(slot.Occupants, ", ")
			if missing := slot.RemainingCapacity(); missing > 0 {
				understaffed[[2]int{i, j + 1}] = true
				cell = strings.TrimSpace(fmt.Sprintf("%s (-%d)", cell, missing))
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if understaffed[[2]int{row, col}] {
				return understaffedStyle
			}
			return cellStyle
		})

	return t.Render()
}

func dayHeader(i int, day model.Day, dates []time.Time) string {
	if i < len(dates) {
		return fmt.Sprintf("%s %s", day, dates[i].Format("2006-01-02"))
	}
	return string(day)
}
