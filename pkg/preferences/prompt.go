package preferences

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jakechorley/shift-grid/pkg/core/model"
)

// ErrPromptAborted is returned when the user leaves the prompt before answering every question
var ErrPromptAborted = errors.New("preference prompt aborted")

var (
	nameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	recordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// promptModel asks, for each employee and each day, which shift they prefer.
// An empty or unrecognized answer records no preference.
type promptModel struct {
	names   []string
	nameIdx int
	dayIdx  int
	input   textinput.Model
	prefs   model.Preferences
	aborted bool
	done    bool
}

func newPromptModel(names []string) promptModel {
	input := textinput.New()
	input.Placeholder = "morning / afternoon / evening"
	input.CharLimit = 16
	input.Focus()

	return promptModel{
		names: names,
		input: input,
		prefs: model.Preferences{},
		done:  len(names) == 0,
	}
}

func (m promptModel) Init() tea.Cmd {
	if m.done {
		return tea.Quit
	}
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.record()
			if m.done {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// record stores the current answer and moves to the next question
func (m *promptModel) record() {
	if shift, err := model.ParseShift(m.input.Value()); err == nil {
		m.prefs.Set(m.names[m.nameIdx], model.Days[m.dayIdx], shift)
	}
	m.input.Reset()

	m.dayIdx++
	if m.dayIdx == model.DaysPerWeek {
		m.dayIdx = 0
		m.nameIdx++
	}
	if m.nameIdx == len(m.names) {
		m.done = true
	}
}

func (m promptModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	name := m.names[m.nameIdx]
	var b strings.Builder
	fmt.Fprintf(&b, "preferences for %s (%d/%d)\n", nameStyle.Render(name), m.nameIdx+1, len(m.names))

	for _, day := range model.Days[:m.dayIdx] {
		if shift, ok := m.prefs.For(name, day); ok {
			fmt.Fprintf(&b, "  %s %s\n", day, recordStyle.Render(string(shift)))
		} else {
			fmt.Fprintf(&b, "  %s %s\n", day, hintStyle.Render("no preference"))
		}
	}

	fmt.Fprintf(&b, "%s shift: %s\n", model.Days[m.dayIdx], m.input.View())
	b.WriteString(hintStyle.Render("enter to confirm (blank for none) • esc to abort"))
	b.WriteString("\n")
	return b.String()
}

// Prompt runs an interactive terminal session collecting preferences for names.
// Returns ErrPromptAborted if the user quits early.
func Prompt(names []string, in io.Reader, out io.Writer) (model.Preferences, error) {
	program := tea.NewProgram(newPromptModel(names), tea.WithInput(in), tea.WithOutput(out))

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run preference prompt: %w", err)
	}

	m, ok := final.(promptModel)
	if !ok {
		return nil, fmt.Errorf("unexpected prompt model type %T", final)
	}
	if m.aborted {
		return nil, ErrPromptAborted
	}

	return m.prefs, nil
}
