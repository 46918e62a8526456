// Package picker is the interactive day chooser shown when the CLI is
// started without a subcommand.
package picker

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"advent/internal/solver"
)

// ErrNoSelection is returned when the picker is dismissed without
// choosing a day.
var ErrNoSelection = fmt.Errorf("no day selected")

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205")).
	Bold(true)

// item is one selectable day in the list.
type item struct {
	day   int
	title string
}

func (i item) Title() string       { return fmt.Sprintf("Day %d", i.day) }
func (i item) Description() string { return i.title }
func (i item) FilterValue() string { return fmt.Sprintf("%d %s", i.day, i.title) }

// Model drives the day-selection list.
type Model struct {
	list     list.Model
	selected int
	aborted  bool
}

// NewModel builds a picker over the registry's days.
func NewModel(registry *solver.Registry) Model {
	days := registry.Days()
	items := make([]list.Item, 0, len(days))
	for _, day := range days {
		s, err := registry.Lookup(day)
		if err != nil {
			continue
		}
		items = append(items, item{day: day, title: s.Title()})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Advent of Code 2020"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if i, ok := m.list.SelectedItem().(item); ok {
				m.selected = i.day
				return m, tea.Quit
			}
		case "q", "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

// Selected returns the chosen day, or ErrNoSelection if the picker was
// dismissed.
func (m Model) Selected() (int, error) {
	if m.aborted || m.selected == 0 {
		return 0, ErrNoSelection
	}
	return m.selected, nil
}

// Pick runs the picker to completion and returns the chosen day.
func Pick(registry *solver.Registry) (int, error) {
	p := tea.NewProgram(NewModel(registry), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("failed to run day picker: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return 0, fmt.Errorf("unexpected picker model type %T", final)
	}
	return m.Selected()
}
