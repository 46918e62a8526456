package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"advent/internal/solver"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubSolver struct {
	day   int
	title string
}

func (s stubSolver) Day() int      { return s.day }
func (s stubSolver) Title() string { return s.title }
func (s stubSolver) Solve(string) (solver.Result, error) {
	return solver.Result{}, nil
}

func testRegistry(t *testing.T) *solver.Registry {
	t.Helper()
	r := solver.NewRegistry()
	require.NoError(t, r.Register(stubSolver{day: 1, title: "Report Repair"}))
	require.NoError(t, r.Register(stubSolver{day: 2, title: "Password Philosophy"}))
	return r
}

func TestNewModel(t *testing.T) {
	m := NewModel(testRegistry(t))
	items := m.list.Items()
	require.Len(t, items, 2)

	first, ok := items[0].(item)
	require.True(t, ok)
	assert.Equal(t, 1, first.day)
	assert.Equal(t, "Day 1", first.Title())
	assert.Equal(t, "Report Repair", first.Description())
}

func TestSelectWithEnter(t *testing.T) {
	m := NewModel(testRegistry(t))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	day, err := next.(Model).Selected()
	require.NoError(t, err)
	assert.Equal(t, 1, day)
}

func TestDismiss(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	}
	for _, key := range keys {
		m := NewModel(testRegistry(t))
		next, cmd := m.Update(key)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())

		_, err := next.(Model).Selected()
		assert.ErrorIs(t, err, ErrNoSelection)
	}
}

func TestSelectedWithoutChoice(t *testing.T) {
	m := NewModel(testRegistry(t))
	_, err := m.Selected()
	assert.ErrorIs(t, err, ErrNoSelection)
}
